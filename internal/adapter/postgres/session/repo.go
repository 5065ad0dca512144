// Package session provides the PostgreSQL repository for study sessions.
//
// A session row carries its remaining word queue as a JSONB array of word
// IDs. All mutating queries are guarded by the expected current state
// (status, progress counter) in the WHERE clause; when the guard fails the
// repository reports domain.ErrConflict, which the study service resolves
// into the caller-facing error for the operation at hand. The partial
// unique index on (user_id) over live sessions enforces the one
// active-or-paused session per learner rule at the storage level.
package session

import (
	"context"
	"encoding/json"
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

// liveSessionConstraint is the partial unique index guaranteeing at most
// one active or paused session per user.
const liveSessionConstraint = "study_sessions_one_live_per_user"

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, mode, goal_count, time_limit_seconds, status,
	words_reviewed, words_correct, queue, started_at, ended_at, reset_at, created_at`

const createSQL = `
INSERT INTO study_sessions (id, user_id, mode, goal_count, time_limit_seconds, status,
	words_reviewed, words_correct, queue, started_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2
`

const getLiveByUserSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1 AND status IN ('active', 'paused')
`

const advanceProgressSQL = `
UPDATE study_sessions
SET words_reviewed = words_reviewed + 1,
	words_correct  = words_correct + CASE WHEN $4 THEN 1 ELSE 0 END,
	queue          = $5
WHERE id = $1 AND user_id = $2 AND status = 'active' AND words_reviewed = $3
RETURNING ` + sessionColumns

const setStatusSQL = `
UPDATE study_sessions
SET status = $4, ended_at = $5
WHERE id = $1 AND user_id = $2 AND status = ANY($3)
RETURNING ` + sessionColumns

const resetSQL = `
UPDATE study_sessions
SET queue = $3, words_reviewed = 0, words_correct = 0, status = 'active',
	reset_at = $4, ended_at = NULL
WHERE id = $1 AND user_id = $2 AND status IN ('active', 'paused')
RETURNING ` + sessionColumns

const completedDayCountsSQL = `
SELECT date_trunc('day', ended_at)::date AS day, count(*)
FROM study_sessions
WHERE user_id = $1 AND status = 'completed' AND ended_at >= $2
GROUP BY day
ORDER BY day DESC
`

const totalsSQL = `
SELECT
	count(*) AS sessions,
	count(*) FILTER (WHERE status = 'completed') AS completed,
	COALESCE(sum(words_reviewed), 0) AS words_reviewed,
	COALESCE(sum(words_correct), 0) AS words_correct
FROM study_sessions
WHERE user_id = $1
`

const countAllSQL = `
SELECT count(*), count(*) FILTER (WHERE status = 'completed')
FROM study_sessions
`

// ---------------------------------------------------------------------------
// Repository
// ---------------------------------------------------------------------------

// Repo persists study sessions in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo creates a study session repository backed by the given pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new session in the given state. The ID and creation
// time are assigned here. A violation of the one-live-session rule comes
// back as domain.ErrSessionActive.
func (r *Repo) Create(ctx context.Context, s domain.StudySession) (domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s.ID = uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	if s.StartedAt.IsZero() {
		s.StartedAt = now
	}
	s.CreatedAt = now

	queue, err := marshalQueue(s.Queue)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("create session: %w", err)
	}

	created, err := scanSession(q.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.Mode.String(),
		s.GoalCount,
		s.TimeLimitSeconds,
		s.Status.String(),
		s.WordsReviewed,
		s.WordsCorrect,
		queue,
		s.StartedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == liveSessionConstraint {
			return domain.StudySession{}, fmt.Errorf("create session: %w", domain.ErrSessionActive)
		}
		return domain.StudySession{}, mapError("create session", err)
	}
	return created, nil
}

// GetByID returns the session with the given ID owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return domain.StudySession{}, mapError("get session", err)
	}
	return s, nil
}

// GetLiveByUser returns the user's active or paused session, if any.
func (r *Repo) GetLiveByUser(ctx context.Context, userID uuid.UUID) (domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getLiveByUserSQL, userID))
	if err != nil {
		return domain.StudySession{}, mapError("get live session", err)
	}
	return s, nil
}

// AdvanceProgress applies one answered word to an active session. The
// guard on words_reviewed makes concurrent submissions safe: whichever
// call loses the race gets domain.ErrConflict.
func (r *Repo) AdvanceProgress(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionAdvanceParams) (domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	queue, err := marshalQueue(p.Queue)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("advance session: %w", err)
	}

	s, err := scanSession(q.QueryRow(ctx, advanceProgressSQL,
		sessionID, userID, p.ExpectedReviewed, p.Correct, queue,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StudySession{}, fmt.Errorf("advance session: %w", domain.ErrConflict)
		}
		return domain.StudySession{}, mapError("advance session", err)
	}
	return s, nil
}

// UpdateStatus transitions a session into p.To, provided its current
// status is one of p.From. A failed guard reports domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionStatusParams) (domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, setStatusSQL,
		sessionID, userID, statusStrings(p.From), p.To.String(), p.EndedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StudySession{}, fmt.Errorf("update session status: %w", domain.ErrConflict)
		}
		return domain.StudySession{}, mapError("update session status", err)
	}
	return s, nil
}

// Reset restarts a live session: fresh queue, zeroed counters, status back
// to active. The started_at timestamp is left untouched so a time limit
// keeps counting from the original start.
func (r *Repo) Reset(ctx context.Context, userID, sessionID uuid.UUID, queue []uuid.UUID, resetAt time.Time) (domain.StudySession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := marshalQueue(queue)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("reset session: %w", err)
	}

	s, err := scanSession(q.QueryRow(ctx, resetSQL,
		sessionID, userID, raw, resetAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StudySession{}, fmt.Errorf("reset session: %w", domain.ErrConflict)
		}
		return domain.StudySession{}, mapError("reset session", err)
	}
	return s, nil
}

// CompletedDayCounts returns, for each calendar day with at least one
// completed session since from, the number completed that day. Days are
// ordered newest first.
func (r *Repo) CompletedDayCounts(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DaySessionCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, completedDayCountsSQL, userID, from.UTC())
	if err != nil {
		return nil, mapError("get completed day counts", err)
	}
	defer rows.Close()

	counts := make([]domain.DaySessionCount, 0)
	for rows.Next() {
		var c domain.DaySessionCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, mapError("get completed day counts", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("get completed day counts", err)
	}
	return counts, nil
}

// Totals aggregates session counts and reviewed-word totals for a user.
func (r *Repo) Totals(ctx context.Context, userID uuid.UUID) (domain.SessionTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.SessionTotals
	err := q.QueryRow(ctx, totalsSQL, userID).Scan(
		&t.Sessions, &t.Completed, &t.WordsReviewed, &t.WordsCorrect,
	)
	if err != nil {
		return domain.SessionTotals{}, mapError("get session totals", err)
	}
	return t, nil
}

// CountAll returns platform-wide session counts for the admin stats view.
func (r *Repo) CountAll(ctx context.Context) (total, completed int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := q.QueryRow(ctx, countAllSQL).Scan(&total, &completed); err != nil {
		return 0, 0, mapError("count all sessions", err)
	}
	return total, completed, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (domain.StudySession, error) {
	var (
		s        domain.StudySession
		mode     string
		status   string
		queueRaw []byte
	)
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&mode,
		&s.GoalCount,
		&s.TimeLimitSeconds,
		&status,
		&s.WordsReviewed,
		&s.WordsCorrect,
		&queueRaw,
		&s.StartedAt,
		&s.EndedAt,
		&s.ResetAt,
		&s.CreatedAt,
	)
	if err != nil {
		return domain.StudySession{}, err
	}

	s.Mode = domain.StudyMode(mode)
	s.Status = domain.SessionStatus(status)

	s.Queue, err = unmarshalQueue(queueRaw)
	if err != nil {
		return domain.StudySession{}, err
	}
	return s, nil
}

func marshalQueue(queue []uuid.UUID) ([]byte, error) {
	if queue == nil {
		queue = []uuid.UUID{}
	}
	raw, err := json.Marshal(queue)
	if err != nil {
		return nil, fmt.Errorf("marshal queue: %w", err)
	}
	return raw, nil
}

func unmarshalQueue(raw []byte) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return []uuid.UUID{}, nil
	}
	var queue []uuid.UUID
	if err := json.Unmarshal(raw, &queue); err != nil {
		return nil, fmt.Errorf("unmarshal queue: %w", err)
	}
	if queue == nil {
		queue = []uuid.UUID{}
	}
	return queue, nil
}

func statusStrings(statuses []domain.SessionStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
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
