package handlers

import (
	"net/http"

	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
	"spellingmaster/internal/service"
)

// RewardHandler exposes the collectible reward gallery.
type RewardHandler struct {
	rewards *service.RewardService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewards *service.RewardService) *RewardHandler {
	return &RewardHandler{rewards: rewards}
}

// RegisterRoutes registers reward endpoints on the mux.
func (h *RewardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/rewards", h.List)
}

// List returns granted rewards, newest first, with optional category, cohort
// and tier filters.
func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.RewardFilter
	q := r.URL.Query()

	if raw := q.Get("category"); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		filter.Category = category
	}
	if raw := q.Get("cohort"); raw != "" {
		cohort, err := models.ParseCohort(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		filter.Cohort = cohort
	}
	if raw := q.Get("tier"); raw != "" {
		tier, err := models.ParseRewardTier(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		filter.Tier = tier
	}

	grants, err := h.rewards.All(filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load rewards", "Reward query failed", err)
		return
	}
	if grants == nil {
		grants = []models.RewardGrant{}
	}

	count, err := h.rewards.Count()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load rewards", "Reward query failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"rewards": grants,
		"total":   count,
	})
}
