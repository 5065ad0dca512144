package domain

// Difficulty is the user-assigned rating of a word. It is independent of
// mastery and only influences difficult-mode selection.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// MasteryLevel classifies a word's learning progress. It is derived from
// the correct-review count and is never stored or set directly.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryMastered MasteryLevel = "mastered"
)

func (m MasteryLevel) String() string { return string(m) }

func (m MasteryLevel) IsValid() bool {
	switch m {
	case MasteryNew, MasteryLearning, MasteryMastered:
		return true
	}
	return false
}

// StudyMode is the word-selection policy for a study session.
type StudyMode string

const (
	StudyModeNew       StudyMode = "new"
	StudyModeReview    StudyMode = "review"
	StudyModeMixed     StudyMode = "mixed"
	StudyModeDifficult StudyMode = "difficult"
)

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeNew, StudyModeReview, StudyModeMixed, StudyModeDifficult:
		return true
	}
	return false
}

// SessionStatus represents the state of a study session.
// Completed and abandoned are terminal: no transitions leave them.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusAbandoned SessionStatus = "abandoned"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusPaused, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusAbandoned
}

// AchievementType identifies a badge in the fixed rule table.
type AchievementType string

const (
	AchievementWordMaster     AchievementType = "word_master"
	AchievementStreakChampion AchievementType = "streak_champion"
	AchievementPerfectScore   AchievementType = "perfect_score"
	AchievementSpeedLearner   AchievementType = "speed_learner"
)

func (a AchievementType) String() string { return string(a) }

func (a AchievementType) IsValid() bool {
	switch a {
	case AchievementWordMaster, AchievementStreakChampion, AchievementPerfectScore, AchievementSpeedLearner:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechPhrase       PartOfSpeech = "phrase"
	PartOfSpeechOther        PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechPhrase, PartOfSpeechOther:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
