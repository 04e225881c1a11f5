package service

import (
	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

// SettingsService exposes the learner's preference record.
type SettingsService struct {
	settings *repository.SettingsRepository
}

// NewSettingsService creates a settings service.
func NewSettingsService(settings *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the current settings, creating defaults on first use.
func (s *SettingsService) Get() (*models.UserSettings, error) {
	return s.settings.Get()
}

// Update persists preference changes.
func (s *SettingsService) Update(soundEnabled, dyslexiaMode bool) (*models.UserSettings, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	settings.SoundEnabled = soundEnabled
	settings.DyslexiaMode = dyslexiaMode
	if err := s.settings.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
