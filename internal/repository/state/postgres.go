package state

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

func (r *postgresRepo) Save(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO client_state (key, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET document = EXCLUDED.document,
    updated_at = now()
`, key, raw)
	return err
}

func (r *postgresRepo) Load(ctx context.Context, key string, out any) error {
	var raw []byte
	err := r.pool.QueryRow(ctx, `
SELECT document
FROM client_state
WHERE key = $1
`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(raw, out)
}
