package repository

import (
	"database/sql"

	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
)

// StreakRepository handles the singleton streak record
type StreakRepository struct {
	db *database.DB
}

// NewStreakRepository creates a new streak repository
func NewStreakRepository(db *database.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

// Get retrieves the streak record, creating the default row on first use.
func (r *StreakRepository) Get() (*models.Streak, error) {
	query := `
		SELECT id, current_streak, longest_streak, last_practice_date
		FROM streaks
		LIMIT 1
	`

	streak := &models.Streak{}
	var lastDate sql.NullString

	err := r.db.QueryRow(query).Scan(&streak.ID, &streak.CurrentStreak, &streak.LongestStreak, &lastDate)
	if err == sql.ErrNoRows {
		return r.createDefault()
	}
	if err != nil {
		return nil, err
	}

	if lastDate.Valid {
		streak.LastPracticeDate = lastDate.String
	}
	return streak, nil
}

// Update persists the streak counters and last practice date.
func (r *StreakRepository) Update(streak *models.Streak) error {
	query := `
		UPDATE streaks
		SET current_streak = ?, longest_streak = ?, last_practice_date = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, streak.CurrentStreak, streak.LongestStreak, streak.LastPracticeDate, streak.ID)
	return err
}

func (r *StreakRepository) createDefault() (*models.Streak, error) {
	query := `
		INSERT INTO streaks (current_streak, longest_streak, last_practice_date)
		VALUES (0, 0, NULL)
	`
	id, err := r.db.ExecReturningID(query)
	if err != nil {
		return nil, err
	}
	return &models.Streak{ID: id}, nil
}
