package handlers

import (
	"net/http"

	"spellingmaster/internal/models"
	"spellingmaster/internal/service"
)

// ProgressHandler exposes progress records, statistics and the data reset.
type ProgressHandler struct {
	progress *service.ProgressService
	streaks  *service.StreakService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress *service.ProgressService, streaks *service.StreakService) *ProgressHandler {
	return &ProgressHandler{progress: progress, streaks: streaks}
}

// RegisterRoutes registers progress endpoints on the mux.
func (h *ProgressHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/progress", h.Overview)
	mux.HandleFunc("GET /api/progress/item/{category}/{identifier}", h.Item)
	mux.HandleFunc("GET /api/statistics", h.Statistics)
	mux.HandleFunc("GET /api/streak", h.Streak)
	mux.HandleFunc("POST /api/reset", h.Reset)
}

// Overview lists progress for a whole cohort, optionally narrowed to one
// mastery status via ?status=.
func (h *ProgressHandler) Overview(w http.ResponseWriter, r *http.Request) {
	cohort, err := models.ParseCohort(r.URL.Query().Get("cohort"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	var records []models.Progress
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := models.ParseMasteryStatus(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
		records, err = h.progress.WithStatus(status, cohort)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load progress", "Progress query failed", err)
			return
		}
	} else {
		records, err = h.progress.Overview(cohort)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load progress", "Progress query failed", err)
			return
		}
	}

	if records == nil {
		records = []models.Progress{}
	}
	respondWithJSON(w, http.StatusOK, records)
}

// Item returns the progress record for a single item.
func (h *ProgressHandler) Item(w http.ResponseWriter, r *http.Request) {
	category, err := models.ParseCategory(r.PathValue("category"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	cohort, err := models.ParseCohort(r.URL.Query().Get("cohort"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	record, err := h.progress.Get(r.PathValue("identifier"), category, cohort)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load progress", "Progress query failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// Statistics returns the aggregate dashboard numbers.
func (h *ProgressHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.progress.Statistics()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load statistics", "Statistics query failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// Streak returns the daily practice streak.
func (h *ProgressHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.streaks.Get()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load streak", "Streak query failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, streak)
}

// Reset wipes all learner data.
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.progress.ResetAll(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset data", "Data reset failed", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
