package domain

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a one-time badge. At most one record exists per
// (user, type); once earned it is never re-issued.
type Achievement struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Type     AchievementType
	EarnedAt time.Time
}

// AchievementInfo is the static display metadata for an achievement type.
type AchievementInfo struct {
	Name        string
	Description string
	Points      int
}

var achievementCatalog = map[AchievementType]AchievementInfo{
	AchievementWordMaster: {
		Name:        "Word Master",
		Description: "Mastered 100 words",
		Points:      100,
	},
	AchievementStreakChampion: {
		Name:        "Streak Champion",
		Description: "Completed a study session on 7 days in a row",
		Points:      70,
	},
	AchievementPerfectScore: {
		Name:        "Perfect Score",
		Description: "Finished a session goal with every answer correct",
		Points:      50,
	},
	AchievementSpeedLearner: {
		Name:        "Speed Learner",
		Description: "Reached a session goal inside its time limit",
		Points:      30,
	},
}

// Info returns the display metadata for the achievement type.
// Unknown types return a zero AchievementInfo.
func (a AchievementType) Info() AchievementInfo {
	return achievementCatalog[a]
}
