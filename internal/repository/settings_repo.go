package repository

import (
	"database/sql"
	"time"

	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
)

// SettingsRepository handles the singleton user settings record
type SettingsRepository struct {
	db *database.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the settings record, creating defaults on first use. Sound
// is off by default.
func (r *SettingsRepository) Get() (*models.UserSettings, error) {
	query := `
		SELECT id, sound_enabled, dyslexia_mode, created_at, last_active_at
		FROM user_settings
		LIMIT 1
	`

	settings := &models.UserSettings{}
	err := r.db.QueryRow(query).Scan(
		&settings.ID,
		&settings.SoundEnabled,
		&settings.DyslexiaMode,
		&settings.CreatedAt,
		&settings.LastActiveAt,
	)
	if err == sql.ErrNoRows {
		return r.createDefault()
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update persists preference changes and refreshes the last-active stamp.
func (r *SettingsRepository) Update(settings *models.UserSettings) error {
	settings.LastActiveAt = time.Now()
	query := `
		UPDATE user_settings
		SET sound_enabled = ?, dyslexia_mode = ?, last_active_at = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, settings.SoundEnabled, settings.DyslexiaMode, settings.LastActiveAt, settings.ID)
	return err
}

func (r *SettingsRepository) createDefault() (*models.UserSettings, error) {
	now := time.Now()
	query := `
		INSERT INTO user_settings (sound_enabled, dyslexia_mode, created_at, last_active_at)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, false, false, now, now)
	if err != nil {
		return nil, err
	}
	return &models.UserSettings{ID: id, CreatedAt: now, LastActiveAt: now}, nil
}
