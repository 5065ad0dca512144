package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. GetWord
// ---------------------------------------------------------------------------

// GetWord returns a single word by ID.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Word{}, domain.ErrUnauthorized
	}

	return s.words.GetByID(ctx, userID, wordID)
}

// ---------------------------------------------------------------------------
// 3. ListWords
// ---------------------------------------------------------------------------

// ListWords filters and paginates the learner's library. Hidden words are
// excluded unless the filter asks for them.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) (ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
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

	filter := domain.WordFilter{
		Search:        input.Search,
		Difficulty:    input.Difficulty,
		Mastery:       input.Mastery,
		Favorite:      input.Favorite,
		PartOfSpeech:  input.PartOfSpeech,
		Tag:           input.Tag,
		IncludeHidden: input.IncludeHidden,
		SortBy:        input.SortBy,
		SortOrder:     input.SortOrder,
		Limit:         limit,
		Offset:        offset,
	}

	words, total, err := s.words.List(ctx, userID, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("list words: %w", err)
	}

	return ListResult{
		Words:       words,
		TotalCount:  total,
		HasNextPage: offset+len(words) < total,
	}, nil
}
