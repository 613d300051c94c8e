package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boutique/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// Save inserts the order record once. Orders are immutable; there is no
// update path.
func (r *postgresRepo) Save(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return err
	}
	shipping, err := json.Marshal(o.ShippingMethod)
	if err != nil {
		return err
	}
	payment, err := json.Marshal(o.Payment)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO orders (id, subtotal_cents, shipping_cents, tax_cents, total_cents,
	items, address, shipping_method, payment, estimated_delivery, placed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, o.ID, o.SubtotalCents, o.ShippingCents, o.TaxCents, o.TotalCents,
		items, address, shipping, payment, o.EstimatedDelivery, o.PlacedAt)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	var items, address, shipping, payment []byte
	err := r.pool.QueryRow(ctx, `
SELECT id, subtotal_cents, shipping_cents, tax_cents, total_cents,
	items, address, shipping_method, payment, estimated_delivery, placed_at
FROM orders
WHERE id = $1
`, id).Scan(
		&o.ID,
		&o.SubtotalCents,
		&o.ShippingCents,
		&o.TaxCents,
		&o.TotalCents,
		&items,
		&address,
		&shipping,
		&payment,
		&o.EstimatedDelivery,
		&o.PlacedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shipping, &o.ShippingMethod); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payment, &o.Payment); err != nil {
		return nil, err
	}
	return &o, nil
}
