// Command cleanup-tokens deletes expired and revoked refresh tokens.
// Run it periodically (cron) to keep the refresh_tokens table small.
//
// Requires DATABASE_DSN to be set.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	tokenrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/token"
	"github.com/promisinganuj/kids-vocabulary-app/internal/app"
	"github.com/promisinganuj/kids-vocabulary-app/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := tokenrepo.NewRepo(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup complete", slog.Int("deleted", deleted))
}
