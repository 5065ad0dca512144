package vocabulary

import (
	"context"
	"errors"
	"fmt"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. CreateWord
// ---------------------------------------------------------------------------

// CreateWord adds a word to the learner's library with fresh review
// counters.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Word{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Word{}, err
	}

	normalized := domain.NormalizeText(input.Text)
	if normalized == "" {
		return domain.Word{}, domain.NewValidationError("text", "required")
	}

	// Check library limit.
	count, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return domain.Word{}, fmt.Errorf("count words: %w", err)
	}
	if count >= s.cfg.MaxPerUser {
		return domain.Word{}, domain.NewValidationError("words", "library limit reached")
	}

	// Duplicate check. The unique index backstops concurrent creates.
	_, err = s.words.GetByText(ctx, userID, normalized)
	if err == nil {
		return domain.Word{}, domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Word{}, fmt.Errorf("check duplicate: %w", err)
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	created, err := s.words.Create(ctx, domain.Word{
		UserID:       &userID,
		Text:         input.Text,
		PartOfSpeech: input.PartOfSpeech,
		Definition:   input.Definition,
		Example:      input.Example,
		Difficulty:   difficulty,
		Tags:         input.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Word{}, domain.ErrAlreadyExists
		}
		return domain.Word{}, fmt.Errorf("create word: %w", err)
	}

	return created, nil
}
