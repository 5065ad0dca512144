package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p domain.ProfileUpdateParams) (domain.User, error)
	Count(ctx context.Context) (int, error)
}

type wordRepo interface {
	MasteryCounts(ctx context.Context, userID uuid.UUID) (domain.MasteryBreakdown, error)
	CountAll(ctx context.Context) (learner, base int, err error)
}

type sessionRepo interface {
	Totals(ctx context.Context, userID uuid.UUID) (domain.SessionTotals, error)
	CompletedDayCounts(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DaySessionCount, error)
	CountAll(ctx context.Context) (total, completed int, err error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements user profile management and the dashboard and
// platform statistic aggregates.
type Service struct {
	log      *slog.Logger
	users    userRepo
	words    wordRepo
	sessions sessionRepo
}

// NewService creates a new User service.
func NewService(logger *slog.Logger, users userRepo, words wordRepo, sessions sessionRepo) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		words:    words,
		sessions: sessions,
	}
}
