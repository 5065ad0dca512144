package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session goal and time-limit bounds.
const (
	SessionGoalMin = 5
	SessionGoalMax = 30

	SessionTimeLimitMinSeconds = 300
	SessionTimeLimitMaxSeconds = 1800
)

// StudySession is one learner's study run. At most one session per
// learner may be in active or paused state at a time. Queue holds the
// exact presentation order produced by the selection policy at start
// (or at the most recent reset).
type StudySession struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Mode             StudyMode
	GoalCount        int
	TimeLimitSeconds *int
	Status           SessionStatus
	WordsReviewed    int
	WordsCorrect     int
	Queue            []uuid.UUID
	StartedAt        time.Time
	EndedAt          *time.Time
	ResetAt          *time.Time
	CreatedAt        time.Time
}

// Accuracy returns the fraction of answers that were correct,
// or 0 when nothing has been reviewed.
func (s *StudySession) Accuracy() float64 {
	if s.WordsReviewed == 0 {
		return 0
	}
	return float64(s.WordsCorrect) / float64(s.WordsReviewed)
}

// IsTerminal reports whether the session can no longer change.
func (s *StudySession) IsTerminal() bool {
	return s.Status.IsTerminal()
}

// CurrentWord returns the word the session expects an answer for.
// ok is false when the queue is exhausted.
func (s *StudySession) CurrentWord() (uuid.UUID, bool) {
	if len(s.Queue) == 0 {
		return uuid.Nil, false
	}
	return s.Queue[0], true
}

// GoalReached reports whether the review count has met the session goal.
func (s *StudySession) GoalReached() bool {
	return s.WordsReviewed >= s.GoalCount
}

// TimeExpired reports whether the session has a time limit and now is
// at or past it. Expiry is checked only when an operation touches the
// session, never from a background timer.
func (s *StudySession) TimeExpired(now time.Time) bool {
	if s.TimeLimitSeconds == nil {
		return false
	}
	elapsed := now.Sub(s.StartedAt)
	return elapsed >= time.Duration(*s.TimeLimitSeconds)*time.Second
}

// CanTransitionTo reports whether moving to the target status is a legal
// state-machine step. Terminal states have no outgoing transitions, and
// pause/resume must actually toggle.
func (s *StudySession) CanTransitionTo(target SessionStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case SessionStatusPaused:
		return s.Status == SessionStatusActive
	case SessionStatusActive:
		return s.Status == SessionStatusPaused
	case SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}

// SessionAdvanceParams records one answered word against a session. The
// update only applies while the session is still active and its progress
// counter equals ExpectedReviewed; Queue replaces the stored queue with
// the remainder after the answered word.
type SessionAdvanceParams struct {
	ExpectedReviewed int
	Correct          bool
	Queue            []uuid.UUID
}

// SessionStatusParams moves a session between lifecycle states. From
// lists the states the transition is valid from; EndedAt is set for
// transitions into a terminal state and nil otherwise.
type SessionStatusParams struct {
	From    []SessionStatus
	To      SessionStatus
	EndedAt *time.Time
}

// SessionTotals aggregates a user's session history for the stats view.
type SessionTotals struct {
	Sessions      int
	Completed     int
	WordsReviewed int
	WordsCorrect  int
}

// SessionWordRecord is one submitted answer. Records are append-only and
// immutable once created; AttemptIndex is the 1-based occurrence of the
// word within the session.
type SessionWordRecord struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	WordID         uuid.UUID
	WasCorrect     bool
	ResponseTimeMs *int
	AttemptIndex   int
	AnsweredAt     time.Time
}

// DaySessionCount is the number of completed sessions on one calendar
// day, used for streak calculation.
type DaySessionCount struct {
	Date  time.Time
	Count int
}
