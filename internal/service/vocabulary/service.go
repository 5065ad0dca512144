package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/config"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (domain.Word, error)
	GetByText(ctx context.Context, userID uuid.UUID, textNormalized string) (domain.Word, error)
	GetBaseByID(ctx context.Context, wordID uuid.UUID) (domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	ListBase(ctx context.Context, search string, difficulty *domain.Difficulty, limit, offset int) ([]domain.Word, int, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, w domain.Word) (domain.Word, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
	SetFavorite(ctx context.Context, userID, wordID uuid.UUID, favorite bool) error
	SetHidden(ctx context.Context, userID, wordID uuid.UUID, hidden bool) error
	SetDifficulty(ctx context.Context, userID, wordID uuid.UUID, difficulty domain.Difficulty) error
}

type lookupProvider interface {
	LookupWord(ctx context.Context, word string) (*provider.LookupResult, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word-library management: CRUD and listing, the
// favorite/hidden/difficulty flags, the shared base catalog, and
// AI-assisted lookup.
type Service struct {
	log    *slog.Logger
	words  wordRepo
	lookup lookupProvider
	cfg    config.WordsConfig
}

// NewService creates a new Vocabulary service.
func NewService(logger *slog.Logger, words wordRepo, cfg config.WordsConfig) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		words: words,
		cfg:   cfg,
	}
}

// SetLookup injects the optional AI lookup provider.
func (s *Service) SetLookup(p lookupProvider) {
	s.lookup = p
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
