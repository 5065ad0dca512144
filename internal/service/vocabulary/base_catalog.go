package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 9. ListBaseWords
// ---------------------------------------------------------------------------

// ListBaseWords browses the shared base catalog.
func (s *Service) ListBaseWords(ctx context.Context, input ListBaseWordsInput) (ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return ListResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	limit := clampLimit(input.Limit, 1, s.cfg.MaxPageSize, s.cfg.DefaultPageSize)
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	words, total, err := s.words.ListBase(ctx, input.Search, input.Difficulty, limit, offset)
	if err != nil {
		return ListResult{}, fmt.Errorf("list base words: %w", err)
	}

	return ListResult{
		Words:       words,
		TotalCount:  total,
		HasNextPage: offset+len(words) < total,
	}, nil
}

// ---------------------------------------------------------------------------
// 10. AdoptBaseWord
// ---------------------------------------------------------------------------

// AdoptBaseWord copies a shared base word into the learner's library.
// The copy starts with zeroed review counters and remembers its origin
// via BaseWordID. Adopting the same word twice, or adopting a word the
// learner already added by hand, fails with ErrAlreadyExists.
func (s *Service) AdoptBaseWord(ctx context.Context, baseWordID uuid.UUID) (domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Word{}, domain.ErrUnauthorized
	}

	if baseWordID == uuid.Nil {
		return domain.Word{}, domain.NewValidationError("base_word_id", "required")
	}

	base, err := s.words.GetBaseByID(ctx, baseWordID)
	if err != nil {
		return domain.Word{}, fmt.Errorf("get base word: %w", err)
	}

	// Check library limit.
	count, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return domain.Word{}, fmt.Errorf("count words: %w", err)
	}
	if count >= s.cfg.MaxPerUser {
		return domain.Word{}, domain.NewValidationError("words", "library limit reached")
	}

	// Duplicate check. The unique index backstops concurrent adopts.
	_, err = s.words.GetByText(ctx, userID, base.TextNormalized)
	if err == nil {
		return domain.Word{}, domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Word{}, fmt.Errorf("check duplicate: %w", err)
	}

	adopted, err := s.words.Create(ctx, domain.Word{
		UserID:       &userID,
		Text:         base.Text,
		PartOfSpeech: base.PartOfSpeech,
		Definition:   base.Definition,
		Example:      base.Example,
		Difficulty:   base.Difficulty,
		Tags:         base.Tags,
		BaseWordID:   &base.ID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Word{}, domain.ErrAlreadyExists
		}
		return domain.Word{}, fmt.Errorf("adopt base word: %w", err)
	}

	s.log.InfoContext(ctx, "base word adopted",
		slog.String("user_id", userID.String()),
		slog.String("base_word_id", base.ID.String()),
		slog.String("word_id", adopted.ID.String()),
	)

	return adopted, nil
}
