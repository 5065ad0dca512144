// Package user provides the PostgreSQL repository for application users.
package user

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

const userColumns = `id, email, username, password_hash, role, name, avatar_color,
	learning_goals, created_at, updated_at, last_login_at`

const createSQL = `
INSERT INTO users (id, email, username, password_hash, role, name, avatar_color,
	created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
`

const updateProfileSQL = `
UPDATE users
SET name           = COALESCE($2, name),
	avatar_color   = COALESCE($3, avatar_color),
	learning_goals = COALESCE($4, learning_goals),
	updated_at     = $5
WHERE id = $1
RETURNING ` + userColumns

const updateLastLoginSQL = `
UPDATE users SET last_login_at = $2 WHERE id = $1
`

const countSQL = `SELECT count(*) FROM users`

// ---------------------------------------------------------------------------
// Repository
// ---------------------------------------------------------------------------

// Repo persists users in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo creates a user repository backed by the given pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. The ID and timestamps are assigned here;
// empty role and avatar color fall back to their defaults. A duplicate
// email or username comes back as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u.ID = uuid.New()
	if u.Role == "" {
		u.Role = domain.UserRoleUser
	}
	if u.AvatarColor == "" {
		u.AvatarColor = domain.DefaultAvatarColor
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.Role.String(),
		u.Name,
		u.AvatarColor,
		now,
	))
	if err != nil {
		return domain.User{}, mapError("create user", err)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.User{}, mapError("get user", err)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return domain.User{}, mapError("get user by email", err)
	}
	return u, nil
}

// UpdateProfile applies a partial profile update and returns the updated
// user.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.ProfileUpdateParams) (domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	u, err := scanUser(q.QueryRow(ctx, updateProfileSQL,
		id, p.Name, p.AvatarColor, p.LearningGoals, now,
	))
	if err != nil {
		return domain.User{}, mapError("update profile", err)
	}
	return u, nil
}

// UpdateLastLogin records a successful login time.
func (r *Repo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateLastLoginSQL, id, at.UTC().Truncate(time.Microsecond))
	if err != nil {
		return mapError("update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update last login: %w", domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&role,
		&u.Name,
		&u.AvatarColor,
		&u.LearningGoals,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	return u, nil
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
