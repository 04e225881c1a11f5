package handlers

import (
	"net/http"

	"spellingmaster/internal/content"
	"spellingmaster/internal/models"
)

// ContentHandler serves the static practice material for browsing outside a
// challenge run.
type ContentHandler struct{}

// NewContentHandler creates a new content handler
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// RegisterRoutes registers content endpoints on the mux.
func (h *ContentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/content/words", h.Words)
	mux.HandleFunc("GET /api/content/homophones", h.Homophones)
	mux.HandleFunc("GET /api/content/mnemonic/{word}", h.Mnemonic)
}

// Words returns the cohort's full word list.
func (h *ContentHandler) Words(w http.ResponseWriter, r *http.Request) {
	cohort, err := models.ParseCohort(r.URL.Query().Get("cohort"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cohort": cohort,
		"words":  content.Words(cohort),
	})
}

// Homophones returns every homophone set.
func (h *ContentHandler) Homophones(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, content.Sets())
}

// Mnemonic returns the memory aid for a word.
func (h *ContentHandler) Mnemonic(w http.ResponseWriter, r *http.Request) {
	cohort, err := models.ParseCohort(r.URL.Query().Get("cohort"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	word := r.PathValue("word")
	if !content.HasWord(cohort, word) {
		respondWithError(w, http.StatusNotFound, "Word not in cohort list", "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, content.MnemonicFor(cohort, word))
}
