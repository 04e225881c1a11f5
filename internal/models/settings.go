package models

import "time"

// UserSettings is a singleton preference record for the local learner.
type UserSettings struct {
	ID           int64     `json:"id"`
	SoundEnabled bool      `json:"soundEnabled"`
	DyslexiaMode bool      `json:"dyslexiaMode"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// Statistics is the aggregate view over all progress records for a cohort.
type Statistics struct {
	Mastered      int `json:"mastered"`
	Learning      int `json:"learning"`
	NeedsWork     int `json:"needsWork"`
	NotTried      int `json:"notTried"`
	TotalAttempts int `json:"totalAttempts"`
	TotalCorrect  int `json:"totalCorrect"`
	Accuracy      int `json:"accuracy"` // rounded percentage
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	TotalSessions int `json:"totalSessions"`
}
