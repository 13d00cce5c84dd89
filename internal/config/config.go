// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load(ctx) layers defaults, an optional file and DRAFT_ environment variables.
// - Errors wrap ErrInvalidConfig or ErrLoadConfig so callers can use errors.Is.
package config

import (
	"fmt"
	"time"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/tuning"
)

// Hero source kinds accepted by HeroSource.
const (
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile enables a JSON log file next to stdout when non-empty.
	LogFile string `koanf:"log_file"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// HeroSource selects where hero records come from: yaml or sqlite.
	HeroSource string `koanf:"hero_source"`

	// HeroSourcePath is the file or database path for HeroSource.
	HeroSourcePath string `koanf:"hero_source_path"`

	// WatchSource reloads the catalog when a file source changes on disk.
	WatchSource bool `koanf:"watch_source"`

	// ResultSize is the number of suggestions returned per recommendation.
	ResultSize int `koanf:"result_size"`

	// MaxReasons caps the reasons attached to each suggestion.
	MaxReasons int `koanf:"max_reasons"`

	// SessionTTLSeconds expires idle diversity sessions.
	SessionTTLSeconds int `koanf:"session_ttl_seconds"`

	// MaxSessions bounds the number of tracked sessions.
	MaxSessions int `koanf:"max_sessions"`

	// RateLimitRPS and RateLimitBurst configure the request token bucket. Zero RPS disables it.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// BaseWeights is the starting distribution for adaptive weighting, keyed by factor name.
	BaseWeights map[string]float64 `koanf:"base_weights"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		HeroSource:        SourceYAML,
		HeroSourcePath:    "data/heroes.yaml",
		WatchSource:       true,
		ResultSize:        5,
		MaxReasons:        5,
		SessionTTLSeconds: 3600,
		MaxSessions:       10_000,
		RateLimitRPS:      50,
		RateLimitBurst:    100,
		BaseWeights: map[string]float64{
			string(model.FactorCounter):     0.35,
			string(model.FactorSynergy):     0.25,
			string(model.FactorComposition): 0.20,
			string(model.FactorPriority):    0.15,
			string(model.FactorRoleFit):     0.05,
		},
	}
}

// SessionTTL returns SessionTTLSeconds as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.HeroSource {
	case SourceYAML, SourceSQLite:
	default:
		return fmt.Errorf("%w: unknown hero_source %q", ErrInvalidConfig, c.HeroSource)
	}
	if c.HeroSourcePath == "" {
		return fmt.Errorf("%w: hero_source_path must not be empty", ErrInvalidConfig)
	}
	if c.ResultSize < 1 {
		return fmt.Errorf("%w: result_size must be at least 1, got %d", ErrInvalidConfig, c.ResultSize)
	}
	if c.MaxReasons < 1 {
		return fmt.Errorf("%w: max_reasons must be at least 1, got %d", ErrInvalidConfig, c.MaxReasons)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit values must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Weights(); err != nil {
		return err
	}
	return nil
}

// Weights converts BaseWeights into a normalized distribution.
func (c *Config) Weights() (model.Weights, error) {
	w, err := model.WeightsFromMap(c.BaseWeights)
	if err != nil {
		return model.Weights{}, fmt.Errorf("%w: base_weights: %w", ErrInvalidConfig, err)
	}
	for f, v := range w.Map() {
		if v < 0 {
			return model.Weights{}, fmt.Errorf("%w: base_weights.%s is negative", ErrInvalidConfig, f)
		}
	}
	if w.Sum() <= 0 {
		return model.Weights{}, fmt.Errorf("%w: base_weights must not all be zero", ErrInvalidConfig)
	}
	return w.Normalize(), nil
}

// Tuning returns the stock heuristic table with the configured overrides applied.
func (c *Config) Tuning() (tuning.Tuning, error) {
	t := tuning.Default()
	w, err := c.Weights()
	if err != nil {
		return tuning.Tuning{}, err
	}
	t.ResultSize = c.ResultSize
	t.Reasons.Max = c.MaxReasons
	t.Weighting.Base = w
	return t, nil
}
