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

// StartSession starts a new study session for the current user. Fails with
// domain.ErrSessionActive while an active or paused session exists.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return StartResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return StartResult{}, err
	}

	goal := input.GoalCount
	if goal == 0 {
		goal = s.defaultGoal
	}

	// Fast path for the common client mistake; the partial unique index on
	// live sessions is the authoritative guard.
	if _, err := s.sessions.GetLiveByUser(ctx, userID); err == nil {
		return StartResult{}, domain.ErrSessionActive
	} else if !errors.Is(err, domain.ErrNotFound) {
		return StartResult{}, fmt.Errorf("check live session: %w", err)
	}

	queue, truncated, err := s.buildQueue(ctx, userID, input.Mode, goal)
	if err != nil {
		return StartResult{}, err
	}

	session := domain.StudySession{
		ID:               uuid.New(),
		UserID:           userID,
		Mode:             input.Mode,
		GoalCount:        goal,
		TimeLimitSeconds: input.TimeLimitSeconds,
		Status:           domain.SessionStatusActive,
		Queue:            queue,
		StartedAt:        s.clock.Now(),
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		// Race: another request started a session between the check and
		// the insert.
		if errors.Is(err, domain.ErrSessionActive) {
			return StartResult{}, domain.ErrSessionActive
		}
		return StartResult{}, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("mode", created.Mode.String()),
		slog.Int("goal", created.GoalCount),
		slog.Int("queue", len(created.Queue)),
		slog.Bool("truncated", truncated),
	)

	return StartResult{Session: created, Truncated: truncated}, nil
}

// GetActiveSession returns the user's live (active or paused) session.
// Returns domain.ErrNotFound when the user has none.
func (s *Service) GetActiveSession(ctx context.Context) (domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudySession{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetLiveByUser(ctx, userID)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("get live session: %w", err)
	}
	return session, nil
}

// GetSession returns one of the user's sessions by ID.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudySession{}, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return domain.StudySession{}, domain.NewValidationError("session_id", "is required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// PauseSession moves an active session to paused. Counters and the queue
// are untouched.
func (s *Service) PauseSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error) {
	return s.transition(ctx, sessionID, domain.SessionStatusPaused)
}

// ResumeSession moves a paused session back to active.
func (s *Service) ResumeSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error) {
	return s.transition(ctx, sessionID, domain.SessionStatusActive)
}

// transition applies a pause/resume status change. The current status
// guards the update, so a concurrent transition surfaces as
// domain.ErrInvalidTransition rather than being overwritten.
func (s *Service) transition(ctx context.Context, sessionID uuid.UUID, target domain.SessionStatus) (domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudySession{}, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return domain.StudySession{}, domain.NewValidationError("session_id", "is required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("get session: %w", err)
	}

	if !session.CanTransitionTo(target) {
		return domain.StudySession{}, fmt.Errorf("%s -> %s: %w", session.Status, target, domain.ErrInvalidTransition)
	}

	updated, err := s.sessions.UpdateStatus(ctx, userID, sessionID, domain.SessionStatusParams{
		From: []domain.SessionStatus{session.Status},
		To:   target,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.StudySession{}, fmt.Errorf("%s -> %s: %w", session.Status, target, domain.ErrInvalidTransition)
		}
		return domain.StudySession{}, fmt.Errorf("update status: %w", err)
	}

	s.log.InfoContext(ctx, "session status changed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// ResetSession rebuilds the queue with the session's mode and goal, zeroes
// the live counters and reactivates the session. Answer records from
// before the reset stay in history but no longer count toward progress.
func (s *Service) ResetSession(ctx context.Context, sessionID uuid.UUID) (StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return StartResult{}, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return StartResult{}, domain.NewValidationError("session_id", "is required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return StartResult{}, fmt.Errorf("get session: %w", err)
	}

	if session.IsTerminal() {
		return StartResult{}, fmt.Errorf("reset %s session: %w", session.Status, domain.ErrInvalidTransition)
	}

	queue, truncated, err := s.buildQueue(ctx, userID, session.Mode, session.GoalCount)
	if err != nil {
		return StartResult{}, err
	}

	updated, err := s.sessions.Reset(ctx, userID, sessionID, queue, s.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return StartResult{}, fmt.Errorf("reset session: %w", domain.ErrInvalidTransition)
		}
		return StartResult{}, fmt.Errorf("reset session: %w", err)
	}

	s.log.InfoContext(ctx, "session reset",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
		slog.Int("queue", len(updated.Queue)),
		slog.Bool("truncated", truncated),
	)

	return StartResult{Session: updated, Truncated: truncated}, nil
}

// EndSession finishes a session regardless of goal attainment. A session
// with no reviewed words is marked abandoned instead of completed;
// completion triggers achievement evaluation.
func (s *Service) EndSession(ctx context.Context, sessionID uuid.UUID) (EndResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return EndResult{}, domain.ErrUnauthorized
	}
	if sessionID == uuid.Nil {
		return EndResult{}, domain.NewValidationError("session_id", "is required")
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return EndResult{}, fmt.Errorf("get session: %w", err)
	}

	if session.IsTerminal() {
		return EndResult{}, fmt.Errorf("end %s session: %w", session.Status, domain.ErrInvalidTransition)
	}

	target := domain.SessionStatusCompleted
	if session.WordsReviewed == 0 {
		target = domain.SessionStatusAbandoned
	}

	now := s.clock.Now()

	var (
		ended  domain.StudySession
		earned []domain.AchievementType
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, updateErr := s.sessions.UpdateStatus(txCtx, userID, sessionID, domain.SessionStatusParams{
			From:    []domain.SessionStatus{domain.SessionStatusActive, domain.SessionStatusPaused},
			To:      target,
			EndedAt: &now,
		})
		if updateErr != nil {
			if errors.Is(updateErr, domain.ErrConflict) {
				return fmt.Errorf("end session: %w", domain.ErrInvalidTransition)
			}
			return fmt.Errorf("update status: %w", updateErr)
		}
		ended = updated

		if target == domain.SessionStatusCompleted {
			var evalErr error
			earned, evalErr = s.evaluateAchievements(txCtx, userID, updated, now)
			if evalErr != nil {
				return fmt.Errorf("evaluate achievements: %w", evalErr)
			}
		}
		return nil
	})
	if err != nil {
		return EndResult{}, err
	}

	s.log.InfoContext(ctx, "session ended",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
		slog.String("status", ended.Status.String()),
		slog.Int("words_reviewed", ended.WordsReviewed),
		slog.Int("words_correct", ended.WordsCorrect),
	)

	return EndResult{Session: ended, NewAchievements: earned}, nil
}
