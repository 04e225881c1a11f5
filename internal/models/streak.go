package models

// Streak is a singleton record tracking consecutive practice days.
// LastPracticeDate is a local calendar date string (YYYY-MM-DD), not a
// timestamp: streak continuation is a whole-day question.
type Streak struct {
	ID               int64  `json:"id"`
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	LastPracticeDate string `json:"lastPracticeDate,omitempty"`
}

// PracticedOn reports whether the given calendar date (YYYY-MM-DD) was the
// most recent practice day.
func (s *Streak) PracticedOn(date string) bool {
	return s.LastPracticeDate != "" && s.LastPracticeDate == date
}
