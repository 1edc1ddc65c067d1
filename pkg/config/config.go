// Package config loads the process configuration from the environment.
// A .env file in the working directory is honored, so the same binary runs
// locally and under a CI scheduler with repository secrets.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ASISTEGO_"

// Config is constructed once per invocation and passed read-only into each
// stage entry point. There is no module-level client or credential state.
type Config struct {
	// SheetID is the attendance spreadsheet ID.
	SheetID string `koanf:"sheet_id" validate:"required"`

	// CredentialsFile points at a service-account JSON key file.
	// CredentialsJSON carries the same key inline (for CI secrets).
	// Exactly one of the two must be set; the file wins if both are.
	CredentialsFile string `koanf:"credentials_file"`
	CredentialsJSON string `koanf:"credentials_json"`

	// LogLevel is a zerolog level name.
	LogLevel string `koanf:"log_level"`
}

// Load reads ASISTEGO_* environment variables, after loading .env if one
// exists.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{LogLevel: "info"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.CredentialsFile == "" && cfg.CredentialsJSON == "" {
		return nil, errors.New("no Google credentials configured: set ASISTEGO_CREDENTIALS_FILE or ASISTEGO_CREDENTIALS_JSON")
	}
	return cfg, nil
}
