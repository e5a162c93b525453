// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for the CLI.
type Config struct {
	APIKey       string        `envconfig:"GAMMA_API_KEY"`
	BaseURL      string        `envconfig:"GAMMA_BASE_URL" default:"https://public-api.gamma.app/v1.0"`
	PollInterval time.Duration `envconfig:"GAMMA_POLL_INTERVAL" default:"10s"`
	MaxWait      time.Duration `envconfig:"GAMMA_MAX_WAIT" default:"5m"`
	HTTPTimeout  time.Duration `envconfig:"GAMMA_HTTP_TIMEOUT" default:"30s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from a .env file (when present) and the process
// environment. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
