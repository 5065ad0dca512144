package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary entry in a learner's library. A word with a nil
// UserID belongs to the shared base catalog; adopting a base word copies
// it into a learner's library with fresh counters.
//
// Mastery level is never stored on the struct or in the database. It is
// always derived from TimesCorrect via Mastery.
type Word struct {
	ID             uuid.UUID
	UserID         *uuid.UUID
	Text           string
	TextNormalized string
	PartOfSpeech   PartOfSpeech
	Definition     string
	Example        string
	Difficulty     Difficulty
	TimesReviewed  int
	TimesCorrect   int
	LastReviewedAt *time.Time
	IsFavorite     bool
	IsHidden       bool
	Tags           []string
	BaseWordID     *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Mastery thresholds on the correct-review count.
const (
	masteryLearningMin = 1
	masteryMasteredMin = 3
)

// MasteryFor computes the mastery level for a correct-review count.
// The mapping is monotonic: an incorrect answer never lowers the level,
// it only fails to advance it.
func MasteryFor(timesCorrect int) MasteryLevel {
	switch {
	case timesCorrect >= masteryMasteredMin:
		return MasteryMastered
	case timesCorrect >= masteryLearningMin:
		return MasteryLearning
	default:
		return MasteryNew
	}
}

// Mastery returns the word's derived mastery level.
func (w *Word) Mastery() MasteryLevel {
	return MasteryFor(w.TimesCorrect)
}

// Accuracy returns the fraction of reviews answered correctly,
// or 0 when the word has never been reviewed.
func (w *Word) Accuracy() float64 {
	if w.TimesReviewed == 0 {
		return 0
	}
	return float64(w.TimesCorrect) / float64(w.TimesReviewed)
}

// IsBase reports whether the word belongs to the shared base catalog.
func (w *Word) IsBase() bool {
	return w.UserID == nil
}

// ReviewOutcome is the result of recording one review on a word.
type ReviewOutcome struct {
	WordID    uuid.UUID
	Mastery   MasteryLevel
	LeveledUp bool
}

// WordUpdateParams holds the full set of editable word fields. Review
// counters are never touched by an update.
type WordUpdateParams struct {
	Text         string
	PartOfSpeech PartOfSpeech
	Definition   string
	Example      string
	Difficulty   Difficulty
	Tags         []string
}

// MasteryBreakdown holds per-level word counts for one learner's library.
type MasteryBreakdown struct {
	Total     int
	New       int
	Learning  int
	Mastered  int
	Favorites int
}
