// Package record provides the PostgreSQL repository for per-answer session
// word records. Records are append-only: nothing updates or deletes them,
// and a session reset only moves the cut-off timestamp past which records
// count toward the live session.
package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO session_word_records (id, session_id, word_id, was_correct,
	response_time_ms, attempt_index, answered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const listBySessionSQL = `
SELECT id, session_id, word_id, was_correct, response_time_ms, attempt_index, answered_at
FROM session_word_records
WHERE session_id = $1 AND ($2::timestamptz IS NULL OR answered_at >= $2)
ORDER BY answered_at ASC, id ASC
`

const countByWordSQL = `
SELECT count(*)
FROM session_word_records
WHERE session_id = $1 AND word_id = $2
`

// ---------------------------------------------------------------------------
// Repository
// ---------------------------------------------------------------------------

// Repo persists session word records in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo creates a session word record repository backed by the given pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one answer record. The ID is assigned here; AnsweredAt is
// taken from the record when set, otherwise stamped with the current time.
func (r *Repo) Create(ctx context.Context, rec domain.SessionWordRecord) (domain.SessionWordRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec.ID = uuid.New()
	if rec.AnsweredAt.IsZero() {
		rec.AnsweredAt = time.Now()
	}
	rec.AnsweredAt = rec.AnsweredAt.UTC().Truncate(time.Microsecond)

	_, err := q.Exec(ctx, createSQL,
		rec.ID,
		rec.SessionID,
		rec.WordID,
		rec.WasCorrect,
		rec.ResponseTimeMs,
		rec.AttemptIndex,
		rec.AnsweredAt,
	)
	if err != nil {
		return domain.SessionWordRecord{}, mapError("create word record", err)
	}
	return rec, nil
}

// ListBySession returns a session's records in answer order. When since is
// set, records answered before it are skipped; the study service passes the
// session's reset_at here so a reset session only reports post-reset answers.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID, since *time.Time) ([]domain.SessionWordRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listBySessionSQL, sessionID, since)
	if err != nil {
		return nil, mapError("list word records", err)
	}
	defer rows.Close()

	records := make([]domain.SessionWordRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, mapError("list word records", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list word records", err)
	}
	return records, nil
}

// CountByWord returns how many times a word has already been answered in a
// session, across resets. The next record's attempt index is this plus one.
func (r *Repo) CountByWord(ctx context.Context, sessionID, wordID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByWordSQL, sessionID, wordID).Scan(&count); err != nil {
		return 0, mapError("count word records", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.SessionWordRecord, error) {
	var rec domain.SessionWordRecord
	err := row.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.WordID,
		&rec.WasCorrect,
		&rec.ResponseTimeMs,
		&rec.AttemptIndex,
		&rec.AnsweredAt,
	)
	if err != nil {
		return domain.SessionWordRecord{}, err
	}
	return rec, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
		case "23503":
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case "23514":
			return fmt.Errorf("%s: %w", op, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
