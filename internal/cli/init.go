// Package cli provides common initialization for the command-line entry
// points: .env loading, logger setup and config validation.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"scarti/internal/config"
	applog "scarti/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger at the configured level and
// installs it as the slog default.
func SetupLogger(levelName string) *applog.Logger {
	level, err := config.ParseLevel(levelName)
	if err != nil {
		level, _ = config.ParseLevel("info")
	}
	logger := applog.New(level, applog.ComponentApp)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}
