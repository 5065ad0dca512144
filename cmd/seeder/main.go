// Command seeder loads the shared base-word catalog from a JSON word
// list. It is intended to be run offline, not as part of the server.
//
// Flags:
//
//	--file     path to the JSON word-list file (overrides SEEDER_WORD_LIST_PATH)
//	--dry-run  parse and validate without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	wordrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/word"
	"github.com/promisinganuj/kids-vocabulary-app/internal/app"
	"github.com/promisinganuj/kids-vocabulary-app/internal/app/seeder"
	"github.com/promisinganuj/kids-vocabulary-app/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the JSON word-list file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig()
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *fileFlag != "" {
		seederCfg.WordListPath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.WordListPath == "" {
		logger.Error("no word list given: set --file or SEEDER_WORD_LIST_PATH")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, wordrepo.New(pool), *seederCfg)
	summary, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("done",
		slog.Int("read", summary.Read),
		slog.Int("invalid", summary.Invalid),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("inserted", summary.Inserted),
		slog.Int("updated", summary.Updated),
	)
}
