package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"spellingmaster/internal/artwork"
	"spellingmaster/internal/config"
	"spellingmaster/internal/content"
	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// fakeFetcher is an in-memory ArtworkFetcher for tests.
type fakeFetcher struct {
	fail  bool
	calls int
}

func (f *fakeFetcher) Get(ctx context.Context, externalID int) (artwork.Artwork, error) {
	f.calls++
	if f.fail {
		return artwork.Artwork{}, fmt.Errorf("artwork service down")
	}
	return artwork.Artwork{
		ExternalID: externalID,
		Name:       fmt.Sprintf("creature-%d", externalID),
		ImageURL:   fmt.Sprintf("https://img.example/%d.png", externalID),
	}, nil
}

type testEnv struct {
	db           *database.DB
	progressRepo *repository.ProgressRepository
	sessionRepo  *repository.SessionRepository
	streakRepo   *repository.StreakRepository
	fetcher      *fakeFetcher

	streaks      *StreakService
	progress     *ProgressService
	achievements *AchievementService
	rewards      *RewardService
	challenges   *ChallengeService
	settings     *SettingsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	progressRepo := repository.NewProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	fetcher := &fakeFetcher{}
	streaks := NewStreakService(streakRepo)
	progress := NewProgressService(progressRepo, sessionRepo, streaks, repository.NewResetter(db))
	achievements := NewAchievementService(achievementRepo, progressRepo, sessionRepo, streaks)
	rewards := NewRewardService(rewardRepo, fetcher)

	cfg := config.Load()
	cfg.ResultsDelay = 10 * time.Millisecond
	cfg.RelearnCap = 2
	challenges := NewChallengeService(cfg, progress, achievements, rewards, sessionRepo)

	return &testEnv{
		db:           db,
		progressRepo: progressRepo,
		sessionRepo:  sessionRepo,
		streakRepo:   streakRepo,
		fetcher:      fetcher,
		streaks:      streaks,
		progress:     progress,
		achievements: achievements,
		rewards:      rewards,
		challenges:   challenges,
		settings:     NewSettingsService(settingsRepo),
	}
}

// stubSource serves a fixed item list so challenge tests are deterministic.
type stubSource struct {
	items []QuizItem
}

func (s stubSource) SpellingItems(models.Cohort, int, content.WeightFunc) []QuizItem {
	return s.items
}

func (s stubSource) HomophoneItems(int, content.WeightFunc) []QuizItem {
	return s.items
}

func (s stubSource) RetestItem(item QuizItem, usedPrompts []string) QuizItem {
	return item
}

func wordItem(word string) QuizItem {
	return QuizItem{
		Identifier: word,
		Category:   models.CategoryWord,
		Choices:    []string{word, word + "x"},
		Answer:     word,
	}
}
