package user

import (
	"context"
	"fmt"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// PlatformStats is the admin-only aggregate over the whole installation.
type PlatformStats struct {
	Users             int
	LearnerWords      int
	BaseWords         int
	Sessions          int
	SessionsCompleted int
}

// GetPlatformStats returns installation-wide totals. Requires the admin
// role in context.
func (s *Service) GetPlatformStats(ctx context.Context) (PlatformStats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return PlatformStats{}, domain.ErrUnauthorized
	}
	if ctxutil.UserRoleFromCtx(ctx) != domain.UserRoleAdmin.String() {
		return PlatformStats{}, domain.ErrForbidden
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("count users: %w", err)
	}

	learner, base, err := s.words.CountAll(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("count words: %w", err)
	}

	sessions, completed, err := s.sessions.CountAll(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("count sessions: %w", err)
	}

	return PlatformStats{
		Users:             users,
		LearnerWords:      learner,
		BaseWords:         base,
		Sessions:          sessions,
		SessionsCompleted: completed,
	}, nil
}
