package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite (default), postgres, mysql
	DatabasePath   string // sqlite only
	DatabaseURL    string // postgres/mysql only
	MigrationsPath string

	// Challenge flow tuning
	QuizSize          int           // words per spelling round
	HomophoneQuizSize int           // sentences per homophone round
	ResultsDelay      time.Duration // pause on the results screen before learning starts
	RelearnCap        int           // retest failures before an item is released for the round
	RunTTL            time.Duration // idle time before an abandoned run is reaped

	// Reward artwork service
	ArtworkBaseURL string
	ArtworkTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DB_PATH", "./spellingmaster.db"),
		DatabaseURL:       getEnv("DB_URL", ""),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		QuizSize:          getEnvInt("QUIZ_SIZE", 10),
		HomophoneQuizSize: getEnvInt("HOMOPHONE_QUIZ_SIZE", 10),
		ResultsDelay:      getEnvDuration("RESULTS_DELAY", 3*time.Second),
		RelearnCap:        getEnvInt("RELEARN_CAP", 3),
		RunTTL:            getEnvDuration("RUN_TTL", 2*time.Hour),
		ArtworkBaseURL:    getEnv("ARTWORK_BASE_URL", "https://pokeapi.co/api/v2"),
		ArtworkTimeout:    getEnvDuration("ARTWORK_TIMEOUT", 10*time.Second),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvDuration reads a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
