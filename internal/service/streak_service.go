package service

import (
	"fmt"
	"time"

	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

const dateLayout = "2006-01-02"

// StreakService maintains the daily practice streak. Days are calendar dates
// in the server's local zone, so practicing at 23:59 and again at 00:01
// counts as two consecutive days.
type StreakService struct {
	streaks *repository.StreakRepository
	now     func() time.Time
}

// NewStreakService creates a streak service using the system clock.
func NewStreakService(streaks *repository.StreakRepository) *StreakService {
	return &StreakService{streaks: streaks, now: time.Now}
}

// Get returns the current streak state.
func (s *StreakService) Get() (*models.Streak, error) {
	return s.streaks.Get()
}

// Touch records that practice happened today and returns the updated streak.
// Repeated touches on the same day are no-ops. A gap of more than one day
// resets the current streak to 1.
func (s *StreakService) Touch() (*models.Streak, error) {
	streak, err := s.streaks.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	today := s.now().Format(dateLayout)
	if streak.LastPracticeDate == today {
		return streak, nil
	}

	if streak.LastPracticeDate == previousDay(today) {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastPracticeDate = today

	if err := s.streaks.Update(streak); err != nil {
		return nil, fmt.Errorf("failed to update streak: %w", err)
	}
	return streak, nil
}

func previousDay(date string) string {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dateLayout)
}
