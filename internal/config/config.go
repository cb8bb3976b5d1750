// Package config loads the server's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/signalsfoundry/astro-kernel/internal/logging"
	"github.com/signalsfoundry/astro-kernel/internal/observability"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full server configuration.
type Config struct {
	GRPCAddr    string `env:"ASTRO_GRPC_ADDR" envDefault:":50061"`
	MetricsAddr string `env:"ASTRO_METRICS_ADDR" envDefault:":9090"`

	// At most one external descriptor source is read at start-up.
	CatalogFile string `env:"ASTRO_CATALOG_FILE"`
	CatalogDB   string `env:"ASTRO_CATALOG_DB"`

	BatchWorkers int `env:"ASTRO_BATCH_WORKERS" envDefault:"4"`

	// RateLimit is requests per second per peer host; 0 disables it.
	RateLimit float64 `env:"ASTRO_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"ASTRO_RATE_BURST" envDefault:"100"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Tracing observability.TracingConfig
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GRPCAddr) == "" {
		return fmt.Errorf("%w: ASTRO_GRPC_ADDR is empty", ErrInvalid)
	}
	if c.CatalogFile != "" && c.CatalogDB != "" {
		return fmt.Errorf("%w: set ASTRO_CATALOG_FILE or ASTRO_CATALOG_DB, not both", ErrInvalid)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("%w: ASTRO_BATCH_WORKERS must be at least 1, got %d", ErrInvalid, c.BatchWorkers)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: ASTRO_RATE_LIMIT must not be negative", ErrInvalid)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("%w: ASTRO_RATE_BURST must be at least 1 when rate limiting", ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q is not text or json", ErrInvalid, c.LogFormat)
	}
	if err := c.Tracing.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{
		Level:     c.LogLevel,
		Format:    c.LogFormat,
		AddSource: strings.EqualFold(c.LogLevel, "debug"),
	}
}
