package handlers

import (
	"errors"
	"net/http"

	"spellingmaster/internal/models"
	"spellingmaster/internal/service"
)

// ChallengeHandler exposes the quiz/learn/retest flow over HTTP.
type ChallengeHandler struct {
	challenges *service.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challenges *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges}
}

// RegisterRoutes registers challenge endpoints on the mux.
func (h *ChallengeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/challenge", h.Start)
	mux.HandleFunc("GET /api/challenge/{token}", h.State)
	mux.HandleFunc("POST /api/challenge/{token}/answer", h.SubmitAnswer)
	mux.HandleFunc("POST /api/challenge/{token}/learning", h.AdvanceLearning)
	mux.HandleFunc("POST /api/challenge/{token}/retest", h.SubmitRetest)
	mux.HandleFunc("DELETE /api/challenge/{token}", h.Exit)
}

// Start opens a new challenge run.
func (h *ChallengeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type   string `json:"type"`
		Cohort string `json:"cohort"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	kind, err := models.ParseSessionType(req.Type)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	cohort, err := models.ParseCohort(req.Cohort)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	state, err := h.challenges.Start(kind, cohort)
	if err != nil {
		if errors.Is(err, service.ErrNoItems) {
			respondWithError(w, http.StatusConflict, "No items available for this round", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to start challenge", "Challenge start failed", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, state)
}

// State returns the current run view.
func (h *ChallengeHandler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.challenges.State(r.PathValue("token"))
	if err != nil {
		h.respondRunError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// SubmitAnswer scores a quiz answer.
func (h *ChallengeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.challenges.SubmitQuizAnswer)
}

// AdvanceLearning moves through the learning phase.
func (h *ChallengeHandler) AdvanceLearning(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.challenges.AdvanceLearning)
}

// SubmitRetest scores a retest answer.
func (h *ChallengeHandler) SubmitRetest(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.challenges.SubmitRetestAnswer)
}

func (h *ChallengeHandler) submit(w http.ResponseWriter, r *http.Request, op func(token, answer string) (*service.AnswerResult, error)) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	result, err := op(r.PathValue("token"), req.Answer)
	if err != nil {
		h.respondRunError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Exit abandons a run.
func (h *ChallengeHandler) Exit(w http.ResponseWriter, r *http.Request) {
	if err := h.challenges.Exit(r.PathValue("token")); err != nil {
		h.respondRunError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *ChallengeHandler) respondRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRunNotFound):
		respondWithError(w, http.StatusNotFound, "Challenge run not found", "", nil)
	case errors.Is(err, service.ErrWrongPhase):
		respondWithError(w, http.StatusConflict, "Operation not valid in current phase", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "Challenge operation failed", "Challenge operation failed", err)
	}
}
