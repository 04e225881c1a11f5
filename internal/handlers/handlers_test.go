package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"spellingmaster/internal/artwork"
	"spellingmaster/internal/config"
	"spellingmaster/internal/database"
	"spellingmaster/internal/repository"
	"spellingmaster/internal/service"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	progressRepo := repository.NewProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	artworkSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"name": "testmon", "sprites": {"other": {"official-artwork": {"front_default": "https://img.example/t.png"}}}}`)
	}))
	t.Cleanup(artworkSrv.Close)

	streaks := service.NewStreakService(streakRepo)
	progress := service.NewProgressService(progressRepo, sessionRepo, streaks, repository.NewResetter(db))
	achievements := service.NewAchievementService(achievementRepo, progressRepo, sessionRepo, streaks)
	rewards := service.NewRewardService(rewardRepo, artwork.NewClient(artworkSrv.URL, 5*time.Second))

	cfg := config.Load()
	cfg.QuizSize = 3
	challenges := service.NewChallengeService(cfg, progress, achievements, rewards, sessionRepo)

	mux := http.NewServeMux()
	NewChallengeHandler(challenges).RegisterRoutes(mux)
	NewProgressHandler(progress, streaks).RegisterRoutes(mux)
	NewAchievementHandler(achievements).RegisterRoutes(mux)
	NewRewardHandler(rewards).RegisterRoutes(mux)
	NewSettingsHandler(service.NewSettingsService(settingsRepo)).RegisterRoutes(mux)
	NewContentHandler().RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestChallengeFlowOverHTTP(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/challenge", map[string]string{"type": "spelling", "cohort": "year6"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d, body %s", rec.Code, rec.Body.String())
	}

	var state struct {
		Token   string `json:"token"`
		Phase   string `json:"phase"`
		Total   int    `json:"total"`
		Current struct {
			Identifier string   `json:"identifier"`
			Choices    []string `json:"choices"`
		} `json:"current"`
	}
	decode(t, rec, &state)
	if state.Phase != "quiz" || state.Token == "" {
		t.Fatalf("unexpected start state: %+v", state)
	}
	if state.Total != 3 {
		t.Errorf("total = %d, want 3", state.Total)
	}
	if len(state.Current.Choices) == 0 {
		t.Error("first question has no choices")
	}

	// a spelling item's accepted answer is the word itself
	rec = doJSON(t, mux, http.MethodPost, "/api/challenge/"+state.Token+"/answer",
		map[string]string{"answer": state.Current.Identifier})
	if rec.Code != http.StatusOK {
		t.Fatalf("answer status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result struct {
		Correct bool `json:"correct"`
	}
	decode(t, rec, &result)
	if !result.Correct {
		t.Error("correct answer scored as wrong")
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/challenge/"+state.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("state status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/api/challenge/"+state.Token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("exit status = %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/api/challenge/"+state.Token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("state after exit = %d, want 404", rec.Code)
	}
}

func TestChallengeStartRejectsBadInput(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/challenge", map[string]string{"type": "sudoku"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/challenge", map[string]string{"type": "spelling", "cohort": "year99"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestProgressEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/progress?cohort=year6", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var records []map[string]interface{}
	decode(t, rec, &records)
	if len(records) == 0 {
		t.Fatal("overview is empty for an untouched database")
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/progress?cohort=year6&status=mastered", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decode(t, rec, &records)
	if len(records) != 0 {
		t.Errorf("expected no mastered records, got %d", len(records))
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/progress?cohort=year6&status=bogus", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad status filter = %d, want 400", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/progress/item/word/rhythm?cohort=year6", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("item status = %d", rec.Code)
	}
	var item struct {
		Status string `json:"status"`
	}
	decode(t, rec, &item)
	if item.Status != "not_tried" {
		t.Errorf("item status = %q, want not_tried", item.Status)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/statistics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("statistics status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/reset", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("reset status = %d, want 204", rec.Code)
	}
}

func TestAchievementAndRewardEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/achievements", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("achievements status = %d", rec.Code)
	}
	var achievements struct {
		Achievements []map[string]interface{} `json:"achievements"`
		TotalStars   int                      `json:"totalStars"`
	}
	decode(t, rec, &achievements)
	if len(achievements.Achievements) == 0 {
		t.Error("badge catalogue is empty")
	}
	if achievements.TotalStars != 0 {
		t.Errorf("total stars = %d, want 0", achievements.TotalStars)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/rewards?tier=legendary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("rewards status = %d", rec.Code)
	}
	var rewards struct {
		Rewards []map[string]interface{} `json:"rewards"`
	}
	decode(t, rec, &rewards)
	if len(rewards.Rewards) != 0 {
		t.Errorf("expected no rewards yet, got %d", len(rewards.Rewards))
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/rewards?tier=mythic", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad tier filter = %d, want 400", rec.Code)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/settings", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var settings struct {
		SoundEnabled bool `json:"soundEnabled"`
		DyslexiaMode bool `json:"dyslexiaMode"`
	}
	decode(t, rec, &settings)
	if settings.SoundEnabled {
		t.Error("sound should default to off")
	}

	rec = doJSON(t, mux, http.MethodPut, "/api/settings", map[string]bool{"soundEnabled": true, "dyslexiaMode": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}
	decode(t, rec, &settings)
	if !settings.SoundEnabled || !settings.DyslexiaMode {
		t.Errorf("settings not updated: %+v", settings)
	}
}

func TestContentEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/content/words?cohort=year2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("words status = %d", rec.Code)
	}
	var words struct {
		Cohort string   `json:"cohort"`
		Words  []string `json:"words"`
	}
	decode(t, rec, &words)
	if words.Cohort != "year2" || len(words.Words) == 0 {
		t.Errorf("unexpected words response: %+v", words)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/content/homophones", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("homophones status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/content/mnemonic/rhythm?cohort=year6", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mnemonic status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/content/mnemonic/zebra?cohort=year6", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown word status = %d, want 404", rec.Code)
	}
}
