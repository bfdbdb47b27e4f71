package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultStatusMessage is served on GET / unless overridden.
const DefaultStatusMessage = "Time service is running. Use /time to get the current server time."

// Config aggregates all runtime settings.
type Config struct {
	App     AppConfig     `envPrefix:"TIME_"`
	HTTP    HTTPConfig    `envPrefix:"TIME_HTTP_"`
	Metrics MetricsConfig `envPrefix:"TIME_METRICS_"`
}

type AppConfig struct {
	Environment   string `env:"ENV" envDefault:"development"`
	ServiceName   string `env:"SERVICE_NAME" envDefault:"time-service"`
	StatusMessage string `env:"STATUS_MESSAGE"`
}

type HTTPConfig struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	Port               int           `env:"PORT" envDefault:"8000"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Addr returns the host:port pair the server binds to.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type MetricsConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.App.StatusMessage == "" {
		cfg.App.StatusMessage = DefaultStatusMessage
	}
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("TIME_HTTP_PORT must be between 1 and 65535, got %d", cfg.HTTP.Port)
	}
	if strings.TrimSpace(cfg.App.StatusMessage) == "" {
		return nil, fmt.Errorf("TIME_STATUS_MESSAGE must not be empty")
	}

	return cfg, nil
}
