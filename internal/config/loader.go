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
//  2. file (YAML) if AGF_CONFIG is set
//  3. env (prefix AGF_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("AGF_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: AGF_ADDR, AGF_DEFAULT_PLAN_WEEKS, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("AGF_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "agf_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects structurally broken configuration; partial tables fall
// back to code defaults rather than failing.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.DefaultPlanWeeks <= 0 {
		return fmt.Errorf("%w: default_plan_weeks must be positive", ErrInvalidConfig)
	}
	if c.MaxSubmissionsPerDay <= 0 {
		return fmt.Errorf("%w: max_submissions_per_day must be positive", ErrInvalidConfig)
	}
	for tier, hours := range c.TierHours {
		if hours.Min <= 0 || hours.Max <= hours.Min {
			return fmt.Errorf("%w: tier_hours[%s] range %d-%d is not ascending", ErrInvalidConfig, tier, hours.Min, hours.Max)
		}
	}
	return nil
}
