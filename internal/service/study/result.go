package study

import (
	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// StartResult is returned by StartSession and ResetSession.
type StartResult struct {
	Session domain.StudySession
	// Truncated is set when the library held fewer matching words than the
	// goal count; the queue is simply shorter, never padded.
	Truncated bool
}

// Progress is a point-in-time snapshot of a session's counters.
type Progress struct {
	SessionID     uuid.UUID
	WordsReviewed int
	WordsCorrect  int
	Accuracy      float64
	GoalCount     int
	Remaining     int
	Status        domain.SessionStatus
}

// ProgressOf builds the progress snapshot for a session.
func ProgressOf(s domain.StudySession) Progress {
	return Progress{
		SessionID:     s.ID,
		WordsReviewed: s.WordsReviewed,
		WordsCorrect:  s.WordsCorrect,
		Accuracy:      s.Accuracy(),
		GoalCount:     s.GoalCount,
		Remaining:     len(s.Queue),
		Status:        s.Status,
	}
}

// AnswerResult describes the effect of one submitted answer.
type AnswerResult struct {
	// Session is the post-answer session state; Status is completed when
	// the answer triggered auto-completion.
	Session domain.StudySession
	// Outcome reports the reviewed word's new mastery level and whether
	// this answer caused a level transition.
	Outcome domain.ReviewOutcome
	// NewAchievements lists achievement types earned by an
	// auto-completion, in rule order.
	NewAchievements []domain.AchievementType
}

// EndResult is returned by EndSession.
type EndResult struct {
	Session         domain.StudySession
	NewAchievements []domain.AchievementType
}
