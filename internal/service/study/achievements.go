package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

const (
	// wordMasterTarget is the mastered-word count for Word Master.
	wordMasterTarget = 100
	// streakTargetDays is the consecutive-day count for Streak Champion.
	streakTargetDays = 7
)

// achievementRules is the fixed evaluation order.
var achievementRules = []domain.AchievementType{
	domain.AchievementWordMaster,
	domain.AchievementStreakChampion,
	domain.AchievementPerfectScore,
	domain.AchievementSpeedLearner,
}

// GetAchievements lists the user's earned achievements, newest first.
func (s *Service) GetAchievements(ctx context.Context) ([]domain.Achievement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return list, nil
}

// evaluateAchievements runs the rule table against a just-completed
// session and awards whatever is newly satisfied. Rules run in fixed
// order; each award is keyed on (user, type), so re-evaluating a session
// never duplicates one. Returns the types earned by this evaluation.
func (s *Service) evaluateAchievements(ctx context.Context, userID uuid.UUID, finished domain.StudySession, now time.Time) ([]domain.AchievementType, error) {
	existing, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	have := make(map[domain.AchievementType]bool, len(existing))
	for _, a := range existing {
		have[a.Type] = true
	}

	var earned []domain.AchievementType
	for _, typ := range achievementRules {
		if have[typ] {
			continue
		}

		satisfied, err := s.ruleSatisfied(ctx, userID, typ, finished, now)
		if err != nil {
			return nil, err
		}
		if !satisfied {
			continue
		}

		awarded, err := s.achievements.Award(ctx, userID, typ, now)
		if err != nil {
			return nil, fmt.Errorf("award %s: %w", typ, err)
		}
		if awarded {
			earned = append(earned, typ)
			s.log.InfoContext(ctx, "achievement earned",
				slog.String("user_id", userID.String()),
				slog.String("type", typ.String()),
			)
		}
	}
	return earned, nil
}

// ruleSatisfied evaluates one achievement rule against the finished
// session and the user's accumulated history.
func (s *Service) ruleSatisfied(ctx context.Context, userID uuid.UUID, typ domain.AchievementType, finished domain.StudySession, now time.Time) (bool, error) {
	switch typ {
	case domain.AchievementWordMaster:
		mastered, err := s.words.CountMastered(ctx, userID)
		if err != nil {
			return false, fmt.Errorf("count mastered: %w", err)
		}
		return mastered >= wordMasterTarget, nil

	case domain.AchievementStreakChampion:
		return s.hasCompletionStreak(ctx, userID, now)

	case domain.AchievementPerfectScore:
		return finished.WordsReviewed >= finished.GoalCount &&
			finished.WordsReviewed > 0 &&
			finished.WordsCorrect == finished.WordsReviewed, nil

	case domain.AchievementSpeedLearner:
		if finished.TimeLimitSeconds == nil || finished.WordsReviewed < finished.GoalCount {
			return false, nil
		}
		endedAt := now
		if finished.EndedAt != nil {
			endedAt = *finished.EndedAt
		}
		return endedAt.Sub(finished.StartedAt) < time.Duration(*finished.TimeLimitSeconds)*time.Second, nil
	}
	return false, nil
}

// hasCompletionStreak reports whether the user completed at least one
// session on each of the last streakTargetDays calendar days (UTC), today
// included. The session finishing right now covers today.
func (s *Service) hasCompletionStreak(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -(streakTargetDays - 1))

	days, err := s.sessions.CompletedDayCounts(ctx, userID, from)
	if err != nil {
		return false, fmt.Errorf("completed day counts: %w", err)
	}

	seen := make(map[time.Time]bool, len(days))
	for _, d := range days {
		seen[d.Date.UTC().Truncate(24*time.Hour)] = true
	}
	for i := 0; i < streakTargetDays; i++ {
		if !seen[today.AddDate(0, 0, -i)] {
			return false, nil
		}
	}
	return true, nil
}
