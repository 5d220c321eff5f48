// Package config loads run configuration for the arena from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Arena holds all configuration for a simulation run.
type Arena struct {
	// Seed for the battle random source. 0 means a random seed is used.
	Seed uint64 `yaml:"seed"`

	// Battles is how many simulations to run. Values above 1 switch the
	// run into batch mode with aggregate win rates.
	Battles int `yaml:"battles"`

	// Telemetry enables OpenTelemetry trace export.
	Telemetry bool `yaml:"telemetry"`
}

// DefaultArena returns Arena config with sensible defaults.
func DefaultArena() Arena {
	return Arena{
		Seed:      0,
		Battles:   1,
		Telemetry: true,
	}
}

// LoadArena reads Arena config from a YAML file, applying defaults for
// any omitted field. An empty path returns the defaults.
func LoadArena(path string) (Arena, error) {
	cfg := DefaultArena()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Battles <= 0 {
		return cfg, fmt.Errorf("config %s: battles must be positive, got %d", path, cfg.Battles)
	}
	return cfg, nil
}
