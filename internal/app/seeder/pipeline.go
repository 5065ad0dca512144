// Package seeder loads the shared base-word catalog from a JSON word
// list and bulk-upserts it into the words table.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// baseWordRepo is the batch repository contract consumed by the pipeline.
// Implemented by word.Repo.
type baseWordRepo interface {
	BulkUpsertBase(ctx context.Context, words []domain.Word) (inserted, updated int, err error)
}

// Summary holds the outcome of one seeding run.
type Summary struct {
	Read       int
	Invalid    int
	Duplicates int
	Inserted   int
	Updated    int
	Duration   time.Duration
}

// Pipeline parses, validates and upserts a base word list.
type Pipeline struct {
	log  *slog.Logger
	repo baseWordRepo
	cfg  Config
}

// NewPipeline creates a Pipeline.
func NewPipeline(log *slog.Logger, repo baseWordRepo, cfg Config) *Pipeline {
	return &Pipeline{log: log.With("component", "seeder"), repo: repo, cfg: cfg}
}

// Run executes the seeding pass. With DryRun set it parses and reports
// but writes nothing.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	words, report, err := LoadWordList(p.cfg.WordListPath)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Read:       report.Read,
		Invalid:    report.Invalid,
		Duplicates: report.Duplicates,
	}

	p.log.Info("word list parsed",
		slog.Int("read", report.Read),
		slog.Int("valid", len(words)),
		slog.Int("invalid", report.Invalid),
		slog.Int("duplicates", report.Duplicates),
	)

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping writes")
		summary.Duration = time.Since(start)
		return summary, nil
	}

	batchSize := p.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	for i := 0; i < len(words); i += batchSize {
		end := min(i+batchSize, len(words))

		inserted, updated, err := p.repo.BulkUpsertBase(ctx, words[i:end])
		if err != nil {
			return summary, fmt.Errorf("upsert batch at %d: %w", i, err)
		}
		summary.Inserted += inserted
		summary.Updated += updated
	}

	summary.Duration = time.Since(start)
	p.log.Info("seeding complete",
		slog.Int("inserted", summary.Inserted),
		slog.Int("updated", summary.Updated),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}
