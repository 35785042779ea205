package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/talipby/koroglu-site/internal/cart"
	"github.com/talipby/koroglu-site/internal/catalog"
	"github.com/talipby/koroglu-site/internal/checkout"
	"github.com/talipby/koroglu-site/internal/config"
	"github.com/talipby/koroglu-site/internal/db"
	"github.com/talipby/koroglu-site/internal/httpserver"
	"github.com/talipby/koroglu-site/internal/seed"
	"github.com/talipby/koroglu-site/internal/service/assistant"
	"github.com/talipby/koroglu-site/internal/storage"

	customerrepo "github.com/talipby/koroglu-site/internal/repository/customer"
	orderrepo "github.com/talipby/koroglu-site/internal/repository/order"
	productrepo "github.com/talipby/koroglu-site/internal/repository/product"
	tokenrepo "github.com/talipby/koroglu-site/internal/repository/token"
	customersvc "github.com/talipby/koroglu-site/internal/service/customer"
	productsvc "github.com/talipby/koroglu-site/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, db.Options{
		ConnIdleTime: cfg.DBConnIdleTime,
		ConnLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	customerService := customersvc.New(customerRepo, tokenRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	checkoutSvc := checkout.New(orderRepo, logger)

	// The storefront serves products from an in-memory snapshot. Start from
	// the database; fall back to the built-in catalog when it is empty or
	// unreachable so the shop never opens with a blank shelf.
	products, err := productService.List(ctx)
	if err != nil || len(products) == 0 {
		if err != nil {
			logger.Printf("initial catalog load failed, using fallback: %v", err)
		}
		products = seed.Fallback()
	}
	store := catalog.NewStore(products)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go catalog.NewWatcher(dbpool, productService, store, logger).Run(watchCtx)

	uploads, err := storage.NewLocal(cfg.UploadDir, cfg.FileURLBase, logger)
	if err != nil {
		logger.Fatalf("init upload storage: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc: customerService,
		ProductSvc:  productService,
		CheckoutSvc: checkoutSvc,
		Orders:      orderRepo,
		Catalog:     store,
		Carts:       cart.NewManager(),
		Advisor:     assistant.NewCanned(nil, nil),
		Recommender: assistant.HeadRecommender{},
		Uploads:     uploads,
		UploadDir:   cfg.UploadDir,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	stopWatch()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
