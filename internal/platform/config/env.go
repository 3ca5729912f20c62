// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the plaza client engine.
type Config struct {
	// RemoteBaseURL is the base URL of the remote social API.
	RemoteBaseURL string `env:"PLAZA_REMOTE_URL" envDefault:"http://localhost:8787"`
	// StoragePath is the path of the durable SQLite state file.
	StoragePath string `env:"PLAZA_STORAGE_PATH" envDefault:"plaza.db"`
	// SessionSecret signs the persisted session record. Required.
	SessionSecret string `env:"PLAZA_SESSION_SECRET"`
	// RequestTimeout bounds each remote API call.
	RequestTimeout time.Duration `env:"PLAZA_REQUEST_TIMEOUT" envDefault:"10s"`
	// LoginByName selects the deployment variant that matches the login
	// identifier against the user name instead of the account email.
	LoginByName bool `env:"PLAZA_LOGIN_BY_NAME" envDefault:"false"`
	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `env:"PLAZA_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the plaza configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("PLAZA_SESSION_SECRET is required")
	}
	return cfg, nil
}
