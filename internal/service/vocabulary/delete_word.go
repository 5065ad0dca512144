package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 5. DeleteWord
// ---------------------------------------------------------------------------

// DeleteWord removes a word from the learner's library. Per-session
// answer records for the word are deleted with it.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.Delete(ctx, userID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	return nil
}
