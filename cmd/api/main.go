package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"boutique/internal/cart"
	"boutique/internal/catalog"
	"boutique/internal/checkout"
	"boutique/internal/config"
	"boutique/internal/coupon"
	"boutique/internal/db"
	"boutique/internal/httpserver"
	"boutique/internal/notify"
	"boutique/internal/persist"
	orderrepo "boutique/internal/repository/order"
	productrepo "boutique/internal/repository/product"
	staterepo "boutique/internal/repository/state"
	"boutique/internal/user"
	"boutique/internal/wishlist"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags)
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	products := productrepo.NewPostgres(pool)
	orders := orderrepo.NewPostgres(pool)
	states := staterepo.NewPostgres(pool)

	sink := &notify.LogSink{Logger: logger}
	cat := catalog.New(products)
	engine := cart.New(sink, cfg.MergeOnMoveToCart)
	users := user.New(sink, cfg.LoginDelay)
	wishes := wishlist.New(sink)
	coupons := coupon.New(sink)
	sessions := checkout.NewManager(orders, engine, sink, cfg.OrderProcessingDelay)

	keeper := persist.New(states, logger)
	if err := keeper.RestoreCart(ctx, engine, cat); err != nil {
		logger.Printf("restore cart: %v", err)
	}
	if err := keeper.RestoreUser(ctx, users); err != nil {
		logger.Printf("restore user: %v", err)
	}
	if err := keeper.RestoreWishlist(ctx, wishes); err != nil {
		logger.Printf("restore wishlist: %v", err)
	}
	keeper.BindCart(engine)
	keeper.BindUser(users)
	keeper.BindWishlist(wishes)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:  cat,
		Cart:     engine,
		Checkout: sessions,
		Coupons:  coupons,
		Users:    users,
		Wishlist: wishes,
		Orders:   orders,
		Keeper:   keeper,
	})
	if err != nil {
		logger.Fatalf("build server: %v", err)
	}

	go func() {
		logger.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}
