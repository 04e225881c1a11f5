package models

import "time"

// AchievementCategory groups achievement definitions by the aggregate they
// scan.
type AchievementCategory string

const (
	AchievementWords   AchievementCategory = "words"
	AchievementStreak  AchievementCategory = "streak"
	AchievementSpecial AchievementCategory = "special"
)

// AchievementDefinition is a static badge definition. Threshold definitions
// (words, streak) unlock when an aggregate meets the requirement; special
// definitions unlock on the specific event they describe.
type AchievementDefinition struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Requirement int                 `json:"requirement,omitempty"`
}

// AchievementUnlock is one row in the append-only unlock set. Each
// achievement ID appears at most once.
type AchievementUnlock struct {
	ID            int64     `json:"id"`
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

// AchievementStatus pairs a definition with its unlock state for display.
type AchievementStatus struct {
	AchievementDefinition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}
