package handlers

import (
	"net/http"

	"spellingmaster/internal/models"
	"spellingmaster/internal/service"
)

// AchievementHandler exposes the badge catalogue and unlock state.
type AchievementHandler struct {
	achievements *service.AchievementService
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievements *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// RegisterRoutes registers achievement endpoints on the mux.
func (h *AchievementHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/achievements", h.List)
	mux.HandleFunc("POST /api/achievements/evaluate", h.Evaluate)
}

// List returns every badge with its unlock state and the star total.
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.achievements.WithStatus()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load achievements", "Achievement query failed", err)
		return
	}
	stars, err := h.achievements.TotalStars()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load achievements", "Achievement query failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": statuses,
		"totalStars":   stars,
	})
}

// Evaluate re-scans the thresholds and returns any newly unlocked badges.
// The challenge flow does this on its own; the endpoint exists so the
// dashboard can settle badges earned outside a round, like streaks.
func (h *AchievementHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	newly, err := h.achievements.Evaluate()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to evaluate achievements", "Achievement evaluation failed", err)
		return
	}
	if newly == nil {
		newly = []models.AchievementDefinition{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"newlyUnlocked": newly})
}
