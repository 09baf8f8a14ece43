package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the CLI settings read from the environment.
// Command-line flags override these values.
type Config struct {
	LogLevel string `env:"TRANSIT_LOG_LEVEL" envDefault:"warn"`
	Steps    int    `env:"TRANSIT_STEPS" envDefault:"4"`
	NoColor  bool   `env:"TRANSIT_NO_COLOR" envDefault:"false"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Steps < 0 {
		return Config{}, fmt.Errorf("TRANSIT_STEPS must not be negative, got %d", cfg.Steps)
	}
	return cfg, nil
}
