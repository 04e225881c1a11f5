package repository

import (
	"time"

	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
)

// AchievementRepository handles the append-only achievement unlock set
type AchievementRepository struct {
	db *database.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *database.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// IsUnlocked reports whether an achievement has already been unlocked.
func (r *AchievementRepository) IsUnlocked(achievementID string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM achievements WHERE achievement_id = ?"
	if err := r.db.QueryRow(query, achievementID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Unlock inserts an unlock row if absent. Returns true only when the row was
// newly inserted, so callers can report "newly unlocked" exactly once.
func (r *AchievementRepository) Unlock(achievementID string) (bool, error) {
	unlocked, err := r.IsUnlocked(achievementID)
	if err != nil {
		return false, err
	}
	if unlocked {
		return false, nil
	}

	query := "INSERT INTO achievements (achievement_id, unlocked_at) VALUES (?, ?)"
	if _, err := r.db.Exec(query, achievementID, time.Now()); err != nil {
		return false, err
	}
	return true, nil
}

// All retrieves every unlocked achievement, oldest first.
func (r *AchievementRepository) All() ([]models.AchievementUnlock, error) {
	query := `
		SELECT id, achievement_id, unlocked_at
		FROM achievements
		ORDER BY unlocked_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []models.AchievementUnlock
	for rows.Next() {
		var u models.AchievementUnlock
		if err := rows.Scan(&u.ID, &u.AchievementID, &u.UnlockedAt); err != nil {
			return nil, err
		}
		unlocks = append(unlocks, u)
	}

	return unlocks, rows.Err()
}
