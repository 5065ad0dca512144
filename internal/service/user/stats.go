package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// maxStreakLookbackDays bounds the streak scan; nobody's dashboard needs
// more than a year of consecutive days.
const maxStreakLookbackDays = 366

// GetStats returns the authenticated user's dashboard aggregate: library
// breakdown by mastery level, session totals and the current daily
// streak of completed sessions.
func (s *Service) GetStats(ctx context.Context) (domain.UserStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserStats{}, domain.ErrUnauthorized
	}

	breakdown, err := s.words.MasteryCounts(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("mastery counts: %w", err)
	}

	totals, err := s.sessions.Totals(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("session totals: %w", err)
	}

	streak, err := s.currentStreak(ctx, userID, time.Now())
	if err != nil {
		return domain.UserStats{}, err
	}

	return domain.UserStats{
		TotalWords:        breakdown.Total,
		NewWords:          breakdown.New,
		LearningWords:     breakdown.Learning,
		MasteredWords:     breakdown.Mastered,
		FavoriteWords:     breakdown.Favorites,
		SessionsCompleted: totals.Completed,
		WordsReviewed:     totals.WordsReviewed,
		WordsCorrect:      totals.WordsCorrect,
		StreakDays:        streak,
	}, nil
}

// currentStreak counts consecutive UTC calendar days with at least one
// completed session, walking back from today. A day without completions
// ends the streak; a quiet today does not, so an evening session still
// extends yesterday's run.
func (s *Service) currentStreak(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -maxStreakLookbackDays)

	days, err := s.sessions.CompletedDayCounts(ctx, userID, from)
	if err != nil {
		return 0, fmt.Errorf("completed day counts: %w", err)
	}

	seen := make(map[time.Time]bool, len(days))
	for _, d := range days {
		seen[d.Date.UTC().Truncate(24*time.Hour)] = true
	}

	streak := 0
	day := today
	if !seen[day] {
		day = day.AddDate(0, 0, -1)
	}
	for seen[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
