package word

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// Base catalog rows are unique over text_normalized (user_id IS NULL),
// so re-seeding updates content in place. xmax = 0 distinguishes a fresh
// insert from a conflict update.
const bulkUpsertBaseSQL = `
INSERT INTO words (id, user_id, text, text_normalized, part_of_speech, definition, example, difficulty,
                   tags, created_at, updated_at)
VALUES ($1, NULL, $2, $3, $4, $5, $6, $7, $8, $9, $9)
ON CONFLICT (text_normalized) WHERE user_id IS NULL
DO UPDATE SET
    text           = EXCLUDED.text,
    part_of_speech = EXCLUDED.part_of_speech,
    definition     = EXCLUDED.definition,
    example        = EXCLUDED.example,
    difficulty     = EXCLUDED.difficulty,
    tags           = EXCLUDED.tags,
    updated_at     = EXCLUDED.updated_at
RETURNING (xmax = 0) AS inserted`

// BulkUpsertBase inserts or refreshes base catalog words in one batch
// round trip. Returns how many rows were newly inserted and how many
// existing rows were updated.
func (r *Repo) BulkUpsertBase(ctx context.Context, words []domain.Word) (inserted, updated int, err error) {
	if len(words) == 0 {
		return 0, 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	batch := &pgx.Batch{}
	for _, w := range words {
		tags := w.Tags
		if tags == nil {
			tags = []string{}
		}
		batch.Queue(bulkUpsertBaseSQL,
			uuid.New(), w.Text, domain.NormalizeText(w.Text), w.PartOfSpeech.String(),
			w.Definition, w.Example, w.Difficulty.String(), tags, now,
		)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for i := range words {
		var fresh bool
		if err := results.QueryRow().Scan(&fresh); err != nil {
			return inserted, updated, fmt.Errorf("upsert base word %q: %w", words[i].Text, mapError(err, "word", uuid.Nil))
		}
		if fresh {
			inserted++
		} else {
			updated++
		}
	}

	return inserted, updated, nil
}
