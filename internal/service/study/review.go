package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// SubmitAnswer scores one answer against the word at the head of the
// session queue. The answer advances the queue, updates the word's review
// counters and appends an immutable answer record, all in one transaction.
// The session auto-completes when the updated progress reaches the goal or
// the time limit has elapsed; the time limit is only ever checked here.
//
// Answers must arrive in queue order: a word that is not the current head
// fails with domain.ErrWordNotInSession and leaves no trace. The same
// error is returned when a concurrent submission advanced the queue first.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return AnswerResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return AnswerResult{}, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("get session: %w", err)
	}

	// Answers only apply to active sessions; a paused or finished session
	// has no current word.
	if session.Status != domain.SessionStatusActive {
		return AnswerResult{}, fmt.Errorf("session is %s: %w", session.Status, domain.ErrNotFound)
	}

	head, ok := session.CurrentWord()
	if !ok || head != input.WordID {
		return AnswerResult{}, domain.ErrWordNotInSession
	}

	now := s.clock.Now()

	var (
		updated domain.StudySession
		outcome domain.ReviewOutcome
		earned  []domain.AchievementType
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		word, reviewErr := s.words.RecordReview(txCtx, userID, input.WordID, input.Correct, now)
		if reviewErr != nil {
			return fmt.Errorf("record review: %w", reviewErr)
		}
		outcome = reviewOutcome(word, input.Correct)

		attempts, countErr := s.records.CountByWord(txCtx, session.ID, input.WordID)
		if countErr != nil {
			return fmt.Errorf("count attempts: %w", countErr)
		}

		if _, recErr := s.records.Create(txCtx, domain.SessionWordRecord{
			ID:             uuid.New(),
			SessionID:      session.ID,
			WordID:         input.WordID,
			WasCorrect:     input.Correct,
			ResponseTimeMs: input.ResponseTimeMs,
			AttemptIndex:   attempts + 1,
			AnsweredAt:     now,
		}); recErr != nil {
			return fmt.Errorf("create answer record: %w", recErr)
		}

		advanced, advErr := s.sessions.AdvanceProgress(txCtx, userID, session.ID, domain.SessionAdvanceParams{
			ExpectedReviewed: session.WordsReviewed,
			Correct:          input.Correct,
			Queue:            session.Queue[1:],
		})
		if advErr != nil {
			// A concurrent submission advanced the session first; this
			// answer no longer matches the queue head.
			if errors.Is(advErr, domain.ErrConflict) {
				return domain.ErrWordNotInSession
			}
			return fmt.Errorf("advance progress: %w", advErr)
		}
		updated = advanced

		if advanced.GoalReached() || advanced.TimeExpired(now) {
			completed, endErr := s.sessions.UpdateStatus(txCtx, userID, session.ID, domain.SessionStatusParams{
				From:    []domain.SessionStatus{domain.SessionStatusActive},
				To:      domain.SessionStatusCompleted,
				EndedAt: &now,
			})
			if endErr != nil {
				return fmt.Errorf("complete session: %w", endErr)
			}
			updated = completed

			var evalErr error
			earned, evalErr = s.evaluateAchievements(txCtx, userID, completed, now)
			if evalErr != nil {
				return fmt.Errorf("evaluate achievements: %w", evalErr)
			}
		}
		return nil
	})
	if err != nil {
		return AnswerResult{}, err
	}

	s.log.InfoContext(ctx, "answer submitted",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.Bool("correct", input.Correct),
		slog.String("mastery", outcome.Mastery.String()),
		slog.Int("remaining", len(updated.Queue)),
	)
	if updated.Status == domain.SessionStatusCompleted {
		s.log.InfoContext(ctx, "session auto-completed",
			slog.String("user_id", userID.String()),
			slog.String("session_id", session.ID.String()),
			slog.Int("words_reviewed", updated.WordsReviewed),
			slog.Int("words_correct", updated.WordsCorrect),
		)
	}

	return AnswerResult{Session: updated, Outcome: outcome, NewAchievements: earned}, nil
}

// reviewOutcome derives the mastery effect of a scored review from the
// already-updated word. Only a correct answer can raise the level, so an
// incorrect one never reports a transition.
func reviewOutcome(w domain.Word, correct bool) domain.ReviewOutcome {
	level := w.Mastery()
	leveledUp := correct && level != domain.MasteryFor(w.TimesCorrect-1)
	return domain.ReviewOutcome{WordID: w.ID, Mastery: level, LeveledUp: leveledUp}
}
