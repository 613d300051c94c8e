package order

import (
	"context"

	"boutique/internal/domain"
)

type Repository interface {
	Save(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
