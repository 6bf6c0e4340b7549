// Package config loads runtime settings from defaults, an optional .env
// file, and SUDOKU_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gridkit/sudoku/internal/format"
	"github.com/gridkit/sudoku/internal/solver"
)

type Config struct {
	// Solver settings
	Strategy string        `env:"SUDOKU_STRATEGY"`
	Timeout  time.Duration `env:"SUDOKU_TIMEOUT"`

	// Input handling
	Format string `env:"SUDOKU_FORMAT"`

	// Logging settings
	LogLevel string `env:"SUDOKU_LOG_LEVEL"`
}

// Load builds the effective configuration: defaults, then the env file if
// one exists at envFile, then process environment variables.
func Load(envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Strategy: "basic",
		Timeout:  10 * time.Second,
		Format:   "grid",
		LogLevel: "info",
	}
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SUDOKU_STRATEGY"); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv("SUDOKU_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("SUDOKU_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SUDOKU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate rejects names no command could act on. The timeout is left alone:
// zero and negative values are meaningful to the solver.
func (c *Config) Validate() error {
	if _, err := solver.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := format.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q: %w", c.LogLevel, err)
	}
	return nil
}
