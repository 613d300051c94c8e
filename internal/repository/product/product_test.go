package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"boutique/internal/domain"
	"boutique/internal/migrate"
	"boutique/internal/seed"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func TestPostgres_ListAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE products CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if err := seed.Apply(ctx, pool); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewPostgres(pool)

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != len(seed.Catalog) {
		t.Fatalf("expected %d products, got %d", len(seed.Catalog), len(list))
	}

	got, err := repo.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Premium Denim" || got.PriceCents != 12000 {
		t.Fatalf("product %+v", got)
	}
	if got.OriginalPriceCents == nil || *got.OriginalPriceCents != 15000 {
		t.Fatalf("original price %+v", got.OriginalPriceCents)
	}
	if len(got.Sizes) != 5 {
		t.Fatalf("sizes %v", got.Sizes)
	}

	if _, err := repo.GetByID(ctx, "99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
