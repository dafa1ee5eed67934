// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains the attribution engine's tunable configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MaxConcurrency bounds batch fan-out across journeys and models.
	MaxConcurrency int `koanf:"max_concurrency"`

	// ScorerEndpoint is the data-driven model's prediction URL. Empty means
	// no scorer is configured and data-driven models use linear weights.
	ScorerEndpoint string `koanf:"scorer_endpoint"`

	// ScorerTimeoutMS bounds each external scorer call.
	ScorerTimeoutMS int `koanf:"scorer_timeout_ms"`

	// DefaultHalfLifeDays seeds time-decay models created without an
	// explicit half-life.
	DefaultHalfLifeDays float64 `koanf:"default_half_life_days"`

	// PositionFirstWeight and PositionLastWeight seed position-based models
	// created without explicit endpoint weights.
	PositionFirstWeight float64 `koanf:"position_first_weight"`
	PositionLastWeight  float64 `koanf:"position_last_weight"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		MaxConcurrency:      runtime.NumCPU(),
		ScorerTimeoutMS:     2000,
		DefaultHalfLifeDays: 7.0,
		PositionFirstWeight: 0.4,
		PositionLastWeight:  0.4,
	}
}
