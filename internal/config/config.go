package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8001"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// StaticDir serves a built web client when set (production mode).
	StaticDir string `env:"STATIC_DIR"`

	SessionMaxAge        time.Duration `env:"SESSION_MAX_AGE" default:"2h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" default:"30m"`

	// MaxSessions caps live sessions (0 = unlimited). Each session holds a
	// full copy of the seed dataset.
	MaxSessions int `env:"MAX_SESSIONS" default:"0"`
	// SessionsPerSecond rate-limits session creation (0 = disabled).
	SessionsPerSecond float64 `env:"SESSIONS_PER_SECOND" default:"0"`
	SessionBurst      int     `env:"SESSION_BURST" default:"10"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive, got %s", cfg.SessionMaxAge)
	}
	if cfg.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", cfg.SessionSweepInterval)
	}
	if cfg.MaxSessions < 0 {
		return fmt.Errorf("MAX_SESSIONS must not be negative, got %d", cfg.MaxSessions)
	}
	if cfg.SessionsPerSecond < 0 {
		return fmt.Errorf("SESSIONS_PER_SECOND must not be negative, got %f", cfg.SessionsPerSecond)
	}
	if cfg.SessionsPerSecond > 0 && cfg.SessionBurst <= 0 {
		return fmt.Errorf("SESSION_BURST must be positive when SESSIONS_PER_SECOND is set")
	}
	return nil
}
