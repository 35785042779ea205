package main

import (
	"context"
	"log"
	"os"

	"github.com/talipby/koroglu-site/internal/config"
	"github.com/talipby/koroglu-site/internal/db"
	"github.com/talipby/koroglu-site/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, db.Options{
		ConnIdleTime: cfg.DBConnIdleTime,
		ConnLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
