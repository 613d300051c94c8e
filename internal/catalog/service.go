// Package catalog is the read-only product lookup consumed by the cart and
// search surfaces. The core never mutates the catalog.
package catalog

import (
	"context"
	"strings"

	"boutique/internal/domain"
)

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	repo productRepo
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

// Product looks a product up by id. A miss propagates domain.ErrNotFound,
// which the HTTP surface turns into a not-found outcome.
func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

type SearchFilter struct {
	Query         string
	Category      string
	MinPriceCents *int64
	MaxPriceCents *int64
}

// Search applies a linear filter over the catalog: case-insensitive
// substring match on name and description, exact category, price range.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPriceCents != nil && p.PriceCents < *f.MinPriceCents {
			continue
		}
		if f.MaxPriceCents != nil && p.PriceCents > *f.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
