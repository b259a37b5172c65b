package common

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig holds the corrections-store configuration
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level slog.Level
}

// LoadConfig loads configuration from the environment, reading a local
// .env file first when one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("CONTABLE_DB_PATH", "contable.db"),
		},
		Log: LogConfig{
			Level: getEnvAsLevel("CONTABLE_LOG_LEVEL", slog.LevelInfo),
		},
	}
}

// NewLogger builds the process-wide structured logger.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: c.Log.Level,
	}))
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultValue
	}
}
