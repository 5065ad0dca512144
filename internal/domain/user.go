package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID            uuid.UUID
	Email         string
	Username      string
	PasswordHash  string
	Role          UserRole
	Name          string
	AvatarColor   string
	LearningGoals *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastLoginAt   *time.Time
}

// DefaultAvatarColor is assigned to new users until they pick their own.
const DefaultAvatarColor = "#3498db"

// ProfileUpdateParams holds the editable fields of a user profile.
// Nil fields are left unchanged.
type ProfileUpdateParams struct {
	Name          *string
	AvatarColor   *string
	LearningGoals *string
}

// UserStats is the dashboard aggregate for one learner.
type UserStats struct {
	TotalWords        int
	NewWords          int
	LearningWords     int
	MasteredWords     int
	FavoriteWords     int
	SessionsCompleted int
	WordsReviewed     int
	WordsCorrect      int
	StreakDays        int
}

// Accuracy returns the learner's all-time answer accuracy, or 0 when
// nothing has been reviewed yet.
func (s *UserStats) Accuracy() float64 {
	if s.WordsReviewed == 0 {
		return 0
	}
	return float64(s.WordsCorrect) / float64(s.WordsReviewed)
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
