package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
func (s *Service) GetProfile(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateProfile applies a partial profile update for the authenticated
// user. Review counters, role and credentials are never touched here.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	u, err := s.users.UpdateProfile(ctx, userID, domain.ProfileUpdateParams{
		Name:          input.Name,
		AvatarColor:   input.AvatarColor,
		LearningGoals: input.LearningGoals,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return u, nil
}
