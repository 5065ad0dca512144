// Package achievement provides the PostgreSQL repository for earned
// achievements. Awarding is idempotent per (user, type): the unique
// constraint plus ON CONFLICT DO NOTHING make a repeated award a no-op
// rather than an error.
package achievement

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

const awardSQL = `
INSERT INTO achievements (id, user_id, type, earned_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, type) DO NOTHING
`

const listByUserSQL = `
SELECT id, user_id, type, earned_at
FROM achievements
WHERE user_id = $1
ORDER BY earned_at DESC, id ASC
`

// ---------------------------------------------------------------------------
// Repository
// ---------------------------------------------------------------------------

// Repo persists achievements in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo creates an achievement repository backed by the given pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Award records an achievement for a user. It reports whether the row was
// newly inserted; false means the user already held this achievement.
func (r *Repo) Award(ctx context.Context, userID uuid.UUID, typ domain.AchievementType, earnedAt time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, awardSQL,
		uuid.New(), userID, typ.String(), earnedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return false, mapError("award achievement", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns a user's achievements, most recently earned first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, mapError("list achievements", err)
	}
	defer rows.Close()

	achievements := make([]domain.Achievement, 0)
	for rows.Next() {
		var (
			a   domain.Achievement
			typ string
		)
		if err := rows.Scan(&a.ID, &a.UserID, &typ, &a.EarnedAt); err != nil {
			return nil, mapError("list achievements", err)
		}
		a.Type = domain.AchievementType(typ)
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list achievements", err)
	}
	return achievements, nil
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
