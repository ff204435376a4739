// Package config loads the HTTP facade's settings from a YAML file,
// applies ALGOVIEW_* environment overrides, and optionally watches
// the file for hot reloads. The core library never reads config; it
// takes explicit parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Sentinel errors surfaced by Validate.
var (
	// ErrBadAddr indicates an empty listen address.
	ErrBadAddr = errors.New("config: listen address is empty")

	// ErrBadSpeed indicates a non-positive playback interval.
	ErrBadSpeed = errors.New("config: playback_speed_ms must be positive")

	// ErrBadWindow indicates a non-positive debounce window.
	ErrBadWindow = errors.New("config: debounce_ms must be positive")
)

// Config is the facade configuration. YAML supplies the base values;
// environment variables prefixed ALGOVIEW_ override them.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr" envconfig:"ADDR"`

	// PlaybackSpeedMs is the default auto-playback interval for runs
	// that do not specify one.
	PlaybackSpeedMs int `yaml:"playback_speed_ms" envconfig:"PLAYBACK_SPEED_MS"`

	// DebounceMs is the drag-batching window.
	DebounceMs int `yaml:"debounce_ms" envconfig:"DEBOUNCE_MS"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		PlaybackSpeedMs: 500,
		DebounceMs:      300,
		LogLevel:        "info",
	}
}

// Speed returns PlaybackSpeedMs as a duration.
func (c *Config) Speed() time.Duration { return time.Duration(c.PlaybackSpeedMs) * time.Millisecond }

// Window returns DebounceMs as a duration.
func (c *Config) Window() time.Duration { return time.Duration(c.DebounceMs) * time.Millisecond }

// Load reads path (optional: an empty path or a missing file keeps
// defaults), then applies ALGOVIEW_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing file: defaults + env only.
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process("ALGOVIEW", cfg); err != nil {
		return nil, fmt.Errorf("config: env overrides: %w", err)
	}

	return cfg, nil
}

// Validate checks the invariants the facade depends on.
func Validate(c *Config) error {
	if c.Addr == "" {
		return ErrBadAddr
	}
	if c.PlaybackSpeedMs <= 0 {
		return ErrBadSpeed
	}
	if c.DebounceMs <= 0 {
		return ErrBadWindow
	}

	return nil
}
