// Package config loads golingo configuration from a YAML file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/LocaleKit/golingo"
)

// Config holds all golingo configuration.
type Config struct {
	CacheFile          string                    `yaml:"cache_file"`
	MaxEntries         int                       `yaml:"max_entries"`
	FlushInterval      time.Duration             `yaml:"flush_interval"`
	NumberSubstitution *bool                     `yaml:"number_substitution"`
	PreferredProvider  string                    `yaml:"preferred_provider"`
	Providers          map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds the per-provider key/value options. Unknown
// providers are ignored; unset fields keep the provider defaults.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Enabled *bool  `yaml:"enabled"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	Region  string `yaml:"region"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		CacheFile:     "golingo-cache.json",
		MaxEntries:    10000,
		FlushInterval: 30 * time.Second,
		Providers:     make(map[string]ProviderConfig),
	}
}

// Load reads a YAML config file. A missing file yields the defaults
// without error. A malformed file yields the defaults plus a ConfigError
// for the caller to log; configuration anomalies are never fatal.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path is intentionally user-provided
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, &golingo.ConfigError{Message: "reading config file", Cause: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), &golingo.ConfigError{Message: "parsing config file", Cause: err}
	}

	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = Default().MaxEntries
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = Default().FlushInterval
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}

	return cfg, nil
}

// Provider returns the options for a provider id, zero-valued when the
// id is not configured.
func (c *Config) Provider(id string) ProviderConfig {
	return c.Providers[id]
}

// ProviderEnabled reports whether a provider should start enabled.
// Providers default to enabled unless the config says otherwise.
func (c *Config) ProviderEnabled(id string) bool {
	p, ok := c.Providers[id]
	if !ok || p.Enabled == nil {
		return true
	}
	return *p.Enabled
}

// NumberSubstitutionEnabled reports the number-substitution setting,
// defaulting to enabled.
func (c *Config) NumberSubstitutionEnabled() bool {
	if c.NumberSubstitution == nil {
		return true
	}
	return *c.NumberSubstitution
}
