package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ATTRIB_CONFIG is set
//  3. env (prefix ATTRIB_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ATTRIB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ATTRIB_MAX_CONCURRENCY, ATTRIB_SCORER_ENDPOINT, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("ATTRIB_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "attrib_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.MaxConcurrency < 1 {
		return nil, fmt.Errorf("%w: max_concurrency must be positive", ErrInvalidConfig)
	}
	if cfg.ScorerTimeoutMS < 1 {
		return nil, fmt.Errorf("%w: scorer_timeout_ms must be positive", ErrInvalidConfig)
	}
	if cfg.DefaultHalfLifeDays <= 0 {
		return nil, fmt.Errorf("%w: default_half_life_days must be positive", ErrInvalidConfig)
	}
	if cfg.PositionFirstWeight+cfg.PositionLastWeight > 1 {
		return nil, fmt.Errorf("%w: position weights must not exceed 1.0 combined", ErrInvalidConfig)
	}
	return &cfg, nil
}
