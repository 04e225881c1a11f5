package repository

import (
	"fmt"

	"spellingmaster/internal/database"
)

// Resetter wipes every learner table in one transaction, so a failed reset
// never leaves the database half-cleared.
type Resetter struct {
	db *database.DB
}

// NewResetter creates a new resetter
func NewResetter(db *database.DB) *Resetter {
	return &Resetter{db: db}
}

// ResetAll deletes all learner data. There is no undo.
func (r *Resetter) ResetAll() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}

	tables := []string{
		"progress",
		"practice_sessions",
		"streaks",
		"achievements",
		"reward_grants",
		"user_settings",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return tx.Commit()
}
