// Package config loads the server configuration from the environment. A .env
// file in the working directory is loaded first when present, then the typed
// Config struct is populated from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the portfolio backend.
type Config struct {
	Address   string `env:"SERVER_ADDRESS" envDefault:":5000"`
	DataDir   string `env:"DATA_DIR" envDefault:"data"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	JWTSecret     string        `env:"JWT_SECRET"`
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001,http://localhost:4000"`

	Email EmailConfig `envPrefix:"EMAIL_"`
}

// EmailConfig configures the SMTP notifier. Notifications are disabled when
// Host or User is empty.
type EmailConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	AdminTo  string `env:"ADMIN_TO"`
}

// Load reads .env (if present) and the environment into a Config. It fails
// when no JWT secret is configured or when no admin credential source is set,
// so the server never starts with a guessable default.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	return cfg, nil
}
