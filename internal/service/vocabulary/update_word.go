package vocabulary

import (
	"context"
	"fmt"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 4. UpdateWord
// ---------------------------------------------------------------------------

// UpdateWord edits a word's text, part of speech, definition, example or
// tags. Fields the input leaves nil keep their current value. Review
// counters, the derived mastery level and the flags are never touched.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Word{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Word{}, err
	}

	current, err := s.words.GetByID(ctx, userID, input.WordID)
	if err != nil {
		return domain.Word{}, err
	}

	params := domain.WordUpdateParams{
		Text:         current.Text,
		PartOfSpeech: current.PartOfSpeech,
		Definition:   current.Definition,
		Example:      current.Example,
		Difficulty:   current.Difficulty,
		Tags:         current.Tags,
	}
	if input.Text != nil {
		params.Text = *input.Text
	}
	if input.PartOfSpeech != nil {
		params.PartOfSpeech = *input.PartOfSpeech
	}
	if input.Definition != nil {
		params.Definition = *input.Definition
	}
	if input.Example != nil {
		params.Example = *input.Example
	}
	if input.Tags != nil {
		params.Tags = input.Tags
	}

	updated, err := s.words.Update(ctx, userID, input.WordID, params)
	if err != nil {
		// Renaming onto an existing word trips the unique index.
		return domain.Word{}, fmt.Errorf("update word: %w", err)
	}

	return updated, nil
}
