// Package token provides the PostgreSQL repository for refresh tokens.
//
// Only the SHA-256 hash of a refresh token is ever stored. Revoked tokens
// stay in the table until the cleanup job removes them, so that a lookup by
// hash can distinguish "never existed" from "revoked" at the storage level
// without leaking that distinction to callers: GetByHash returns ErrNotFound
// for both, which is what the reuse-detection path in the auth service needs.
package token

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
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
`

const getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_tokens
WHERE token_hash = $1 AND revoked_at IS NULL
`

const revokeByIDSQL = `
UPDATE refresh_tokens
SET revoked_at = $2
WHERE id = $1 AND revoked_at IS NULL
`

const revokeAllByUserSQL = `
UPDATE refresh_tokens
SET revoked_at = $2
WHERE user_id = $1 AND revoked_at IS NULL
`

const deleteExpiredSQL = `
DELETE FROM refresh_tokens
WHERE expires_at < $1 OR revoked_at IS NOT NULL
`

// ---------------------------------------------------------------------------
// Repository
// ---------------------------------------------------------------------------

// Repo persists refresh tokens in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo creates a refresh token repository backed by the given pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new refresh token. The ID and creation time are assigned
// here; the caller provides the hash and expiry.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t := domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := q.Exec(ctx, createSQL, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)
	if err != nil {
		return domain.RefreshToken{}, mapError("create refresh token", err)
	}
	return t, nil
}

// GetByHash returns the non-revoked token with the given hash. Revoked and
// unknown hashes both come back as ErrNotFound; expiry is not checked here.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(q.QueryRow(ctx, getByHashSQL, tokenHash))
	if err != nil {
		return domain.RefreshToken{}, mapError("get refresh token by hash", err)
	}
	return t, nil
}

// RevokeByID marks a token as revoked. Revoking an already revoked or
// unknown token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if _, err := q.Exec(ctx, revokeByIDSQL, id, now); err != nil {
		return mapError("revoke refresh token", err)
	}
	return nil
}

// RevokeAllByUser revokes every live token belonging to a user, ending all
// of their sessions at once.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if _, err := q.Exec(ctx, revokeAllByUserSQL, userID, now); err != nil {
		return mapError("revoke user refresh tokens", err)
	}
	return nil
}

// DeleteExpired removes tokens that are past their expiry or already
// revoked, returning how many rows were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	tag, err := q.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, mapError("delete expired refresh tokens", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanToken(row pgx.Row) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TokenHash,
		&t.ExpiresAt,
		&t.CreatedAt,
		&t.RevokedAt,
	)
	if err != nil {
		return domain.RefreshToken{}, err
	}
	return t, nil
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
