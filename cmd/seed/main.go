package main

import (
	"context"
	"log"
	"os"
	"time"

	"boutique/internal/config"
	"boutique/internal/db"
	"boutique/internal/seed"
)

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}
	logger.Printf("seeded %d products", len(seed.Catalog))
}
