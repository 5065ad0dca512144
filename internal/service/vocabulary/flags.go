package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 6. SetFavorite
// ---------------------------------------------------------------------------

// SetFavorite marks or unmarks a word as a favorite.
func (s *Service) SetFavorite(ctx context.Context, wordID uuid.UUID, favorite bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.SetFavorite(ctx, userID, wordID, favorite); err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// 7. SetHidden
// ---------------------------------------------------------------------------

// SetHidden hides or unhides a word. Hidden words never enter study
// queues but keep their counters and stay visible when listing asks for
// them.
func (s *Service) SetHidden(ctx context.Context, wordID uuid.UUID, hidden bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.SetHidden(ctx, userID, wordID, hidden); err != nil {
		return fmt.Errorf("set hidden: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// 8. SetDifficulty
// ---------------------------------------------------------------------------

// SetDifficulty records the learner's own difficulty rating for a word.
// The rating feeds the difficult-words study mode; it never touches the
// review counters or the derived mastery level.
func (s *Service) SetDifficulty(ctx context.Context, input SetDifficultyInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.words.SetDifficulty(ctx, userID, input.WordID, input.Difficulty); err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}

	return nil
}
