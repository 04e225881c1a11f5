package handlers

import (
	"net/http"

	"spellingmaster/internal/service"
)

// SettingsHandler exposes the learner's preference record.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterRoutes registers settings endpoints on the mux.
func (h *SettingsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/settings", h.Get)
	mux.HandleFunc("PUT /api/settings", h.Update)
}

// Get returns the current settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load settings", "Settings query failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// Update persists preference changes.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SoundEnabled bool `json:"soundEnabled"`
		DyslexiaMode bool `json:"dyslexiaMode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	settings, err := h.settings.Update(req.SoundEnabled, req.DyslexiaMode)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update settings", "Settings update failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}
