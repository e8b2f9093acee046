package config

import (
	"log"
	"os"
)

// AppConfig holds the process-level settings read from the environment.
type AppConfig struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	FrontendURL string
}

// LoadConfig reads the application configuration from the environment,
// applying defaults for anything unset. Call godotenv.Load first if a .env
// file should be honored.
func LoadConfig() *AppConfig {
	cfg := &AppConfig{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "data/expenses.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Printf("DATABASE_URL not set, using local SQLite database at %s", cfg.DatabaseURL)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
