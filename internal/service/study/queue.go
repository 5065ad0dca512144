package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// buildQueue selects the word queue for a session. Dispatches on mode to
// the matching repository query and returns an ordered list of word IDs of
// length min(goal, available), plus whether the queue fell short of the
// goal. Selection is deterministic: repeated calls over unchanged data
// return the same queue.
func (s *Service) buildQueue(ctx context.Context, userID uuid.UUID, mode domain.StudyMode, goal int) ([]uuid.UUID, bool, error) {
	var (
		words []domain.Word
		err   error
	)

	switch mode {
	case domain.StudyModeNew:
		words, err = s.words.SelectNew(ctx, userID, goal)
	case domain.StudyModeReview:
		words, err = s.words.SelectReview(ctx, userID, goal)
	case domain.StudyModeDifficult:
		words, err = s.words.SelectDifficult(ctx, userID, goal)
	case domain.StudyModeMixed:
		words, err = s.mixedWords(ctx, userID, goal)
	default:
		return nil, false, domain.NewValidationError("mode", "unknown study mode")
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s words: %w", mode, err)
	}

	queue := make([]uuid.UUID, len(words))
	for i, w := range words {
		queue[i] = w.ID
	}
	return queue, len(queue) < goal, nil
}

// mixedWords targets a half-and-half split of new and review words, the
// new half rounded down. When one source runs short the other backfills up
// to limit. The sources are disjoint (times_reviewed == 0 vs > 0), so the
// result holds no duplicates; when both run short it is simply shorter.
func (s *Service) mixedWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	// Fetch up to limit from each source so either can cover the other's
	// shortfall.
	newWords, err := s.words.SelectNew(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select new half: %w", err)
	}
	reviewWords, err := s.words.SelectReview(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select review half: %w", err)
	}

	newCount := limit / 2
	if len(newWords) < newCount {
		newCount = len(newWords)
	}
	reviewCount := limit - newCount
	if len(reviewWords) < reviewCount {
		reviewCount = len(reviewWords)
		newCount = min(limit-reviewCount, len(newWords))
	}

	mixed := make([]domain.Word, 0, newCount+reviewCount)
	mixed = append(mixed, newWords[:newCount]...)
	mixed = append(mixed, reviewWords[:reviewCount]...)
	return mixed, nil
}
