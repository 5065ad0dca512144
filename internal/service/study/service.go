package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	SelectNew(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	SelectReview(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	SelectDifficult(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	RecordReview(ctx context.Context, userID, wordID uuid.UUID, correct bool, now time.Time) (domain.Word, error)
	CountMastered(ctx context.Context, userID uuid.UUID) (int, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session domain.StudySession) (domain.StudySession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (domain.StudySession, error)
	GetLiveByUser(ctx context.Context, userID uuid.UUID) (domain.StudySession, error)
	AdvanceProgress(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionAdvanceParams) (domain.StudySession, error)
	UpdateStatus(ctx context.Context, userID, sessionID uuid.UUID, p domain.SessionStatusParams) (domain.StudySession, error)
	Reset(ctx context.Context, userID, sessionID uuid.UUID, queue []uuid.UUID, resetAt time.Time) (domain.StudySession, error)
	CompletedDayCounts(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DaySessionCount, error)
}

type recordRepo interface {
	Create(ctx context.Context, rec domain.SessionWordRecord) (domain.SessionWordRecord, error)
	CountByWord(ctx context.Context, sessionID, wordID uuid.UUID) (int, error)
}

type achievementRepo interface {
	Award(ctx context.Context, userID uuid.UUID, typ domain.AchievementType, earnedAt time.Time) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study-session engine: queue selection, the session
// state machine, per-word mastery updates and achievement evaluation.
type Service struct {
	words        wordRepo
	sessions     sessionRepo
	records      recordRepo
	achievements achievementRepo
	tx           txManager
	clock        clockwork.Clock
	log          *slog.Logger
	defaultGoal  int
}

// NewService creates a new Study service. defaultGoal is applied when a
// start request omits the goal count.
func NewService(
	log *slog.Logger,
	words wordRepo,
	sessions sessionRepo,
	records recordRepo,
	achievements achievementRepo,
	tx txManager,
	clock clockwork.Clock,
	defaultGoal int,
) *Service {
	return &Service{
		words:        words,
		sessions:     sessions,
		records:      records,
		achievements: achievements,
		tx:           tx,
		clock:        clock,
		log:          log.With("service", "study"),
		defaultGoal:  defaultGoal,
	}
}
