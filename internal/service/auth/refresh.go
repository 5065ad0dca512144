package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/promisinganuj/kids-vocabulary-app/internal/auth"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a
// new pair is issued. A hash that is not found means the token was
// revoked or already rotated — reuse — and returns ErrUnauthorized, as
// do expired tokens and deleted users.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (AuthResult, error) {
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("get token: %w", err)
	}

	if token.IsExpired(time.Now()) {
		return AuthResult{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("get user: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return AuthResult{}, fmt.Errorf("revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue tokens: %w", err)
	}
	return result, nil
}
