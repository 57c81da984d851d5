// Package config loads service configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	SourceChurchTools = "churchtools"
	SourcePostgres    = "postgres"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	// EventSource picks where events and services come from.
	EventSource string `env:"EVENT_SOURCE" envDefault:"churchtools"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	ChurchTools ChurchToolsConfig `envPrefix:"CHURCHTOOLS_"`
	Filter      FilterConfig      `envPrefix:"FILTER_"`

	// ChartLocale orders person labels by collation; "none" keeps data order.
	ChartLocale string `env:"CHART_LOCALE" envDefault:"de"`
}

type ChurchToolsConfig struct {
	BaseURL string        `env:"BASE_URL"`
	Token   string        `env:"TOKEN"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type FilterConfig struct {
	ServiceIDs       []int64 `env:"SERVICE_IDS" envDefault:"6,69,72" envSeparator:","`
	TimeframeMonths  int     `env:"TIMEFRAME_MONTHS" envDefault:"6"`
	MinServicesCount float64 `env:"MIN_SERVICES_COUNT" envDefault:"5"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.EventSource {
	case SourceChurchTools:
		if c.ChurchTools.BaseURL == "" {
			return errors.New("CHURCHTOOLS_BASE_URL is not set")
		}
	case SourcePostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is not set")
		}
	default:
		return fmt.Errorf("unknown EVENT_SOURCE %q", c.EventSource)
	}

	if c.Filter.TimeframeMonths <= 0 {
		return fmt.Errorf("FILTER_TIMEFRAME_MONTHS must be positive, got %d", c.Filter.TimeframeMonths)
	}
	if c.Filter.MinServicesCount < 0 {
		return fmt.Errorf("FILTER_MIN_SERVICES_COUNT must not be negative, got %v", c.Filter.MinServicesCount)
	}
	return nil
}
