// Package config loads the configuration of the Tic-tac-toe service.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration.
type Config struct {
	// ListenAddr is the address the HTTP handler listens on.
	ListenAddr string `yaml:"listen_addr"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// GameExpiry is how long a game is kept after it was started.
	GameExpiry time.Duration `yaml:"game_expiry"`
	// CleanupInterval is how often expired games are removed.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		LogLevel:        "info",
		GameExpiry:      24 * time.Hour,
		CleanupInterval: 4 * time.Hour,
	}
}

// Load reads the configuration file at path on top of [Default]. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a YAML configuration on top of [Default]. Unknown fields are
// rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen_addr must not be empty"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.GameExpiry <= 0 {
		errs = append(errs, fmt.Errorf("game_expiry must be positive, got %v", c.GameExpiry))
	}
	if c.CleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("cleanup_interval must be positive, got %v", c.CleanupInterval))
	}
	return errors.Join(errs...)
}

// Level returns the log level as a [slog.Level].
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level: %w", err)
	}
	return level, nil
}
