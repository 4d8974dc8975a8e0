// Package config provides configuration for the enrichment service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// ModeMock selects the offline mock completer.
	ModeMock = "MOCK"
)

var (
	// ErrMissingAPIKey is returned when no completion credential is configured.
	ErrMissingAPIKey = errors.New("LLM_API_KEY is required")
	// ErrMissingModel is returned when no model identifier is available for a call.
	ErrMissingModel = errors.New("LLM_MODEL is required")
)

// Config holds the enrichment service configuration.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Completion endpoint
	LLMBaseURL  string `env:"LLM_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	LLMAPIKey   string `env:"LLM_API_KEY"`
	LLMModel    string `env:"LLM_MODEL"`
	LLMReferer  string `env:"LLM_REFERER"`
	LLMAppTitle string `env:"LLM_APP_TITLE"`

	// Timeouts
	CallTimeoutMs int `env:"LLM_CALL_TIMEOUT_MS" envDefault:"45000"`

	// Orchestration
	MaxConcurrency int    `env:"ENRICH_MAX_CONCURRENCY" envDefault:"4"`
	Mode           string `env:"ENRICH_MODE"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.Mode = strings.ToUpper(strings.TrimSpace(cfg.Mode))
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	return cfg, nil
}

// CallTimeout is the deadline applied to each completion call.
func (c *Config) CallTimeout() time.Duration {
	if c.CallTimeoutMs <= 0 {
		return 45 * time.Second
	}
	return time.Duration(c.CallTimeoutMs) * time.Millisecond
}

// Debug reports whether per-call debug lines are logged.
func (c *Config) Debug() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogLevel), "debug")
}

// MockMode reports whether the offline mock completer is selected.
func (c *Config) MockMode() bool {
	return c.Mode == ModeMock
}

// Validate checks the settings that must be present before any call is attempted.
func (c *Config) Validate() error {
	if !c.MockMode() && strings.TrimSpace(c.LLMAPIKey) == "" {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(c.LLMModel) == "" {
		return ErrMissingModel
	}
	return nil
}
