package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spellingmaster/internal/artwork"
	"spellingmaster/internal/config"
	"spellingmaster/internal/database"
	"spellingmaster/internal/handlers"
	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
	"spellingmaster/internal/service"
)

func main() {
	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	progressRepo := repository.NewProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	artworkClient := artwork.NewClient(cfg.ArtworkBaseURL, cfg.ArtworkTimeout)
	streakService := service.NewStreakService(streakRepo)
	progressService := service.NewProgressService(progressRepo, sessionRepo, streakService, repository.NewResetter(db))
	achievementService := service.NewAchievementService(achievementRepo, progressRepo, sessionRepo, streakService)
	rewardService := service.NewRewardService(rewardRepo, artworkClient)
	challengeService := service.NewChallengeService(cfg, progressService, achievementService, rewardService, sessionRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	progressHandler := handlers.NewProgressHandler(progressService, streakService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	contentHandler := handlers.NewContentHandler()

	// Setup routes
	mux := http.NewServeMux()
	challengeHandler.RegisterRoutes(mux)
	progressHandler.RegisterRoutes(mux)
	achievementHandler.RegisterRoutes(mux)
	rewardHandler.RegisterRoutes(mux)
	settingsHandler.RegisterRoutes(mux)
	contentHandler.RegisterRoutes(mux)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Reap abandoned challenge runs in the background
	reapCtx, stopReaper := context.WithCancel(context.Background())
	defer stopReaper()
	go reapAbandonedRuns(reapCtx, challengeService, cfg.RunTTL)

	// Warm the artwork cache so first grants do not wait on the network
	go rewardService.Prefetch(reapCtx, models.CohortYear6)
	go rewardService.Prefetch(reapCtx, models.CohortYear2)

	// Start server
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	stopReaper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// reapAbandonedRuns periodically drops challenge runs idle past the TTL.
func reapAbandonedRuns(ctx context.Context, challenges *service.ChallengeService, ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if reaped := challenges.Reap(); reaped > 0 {
				log.Printf("Reaped %d abandoned challenge runs", reaped)
			}
		}
	}
}
