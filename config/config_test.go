package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.CacheFile != "golingo-cache.json" {
		t.Errorf("CacheFile = %q, want default", cfg.CacheFile)
	}
	if cfg.MaxEntries != 10000 {
		t.Errorf("MaxEntries = %d, want 10000", cfg.MaxEntries)
	}
	if !cfg.NumberSubstitutionEnabled() {
		t.Error("number substitution should default to enabled")
	}
}

func TestLoad_MalformedFileYieldsDefaultsAndError(t *testing.T) {
	path := writeConfig(t, "providers: [not a map")

	cfg, err := Load(path)
	if err == nil {
		t.Error("malformed file should return an error for the caller to log")
	}
	if cfg == nil || cfg.MaxEntries != 10000 {
		t.Error("malformed file should still yield usable defaults")
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
cache_file: /tmp/cache.json
max_entries: 500
flush_interval: 10s
number_substitution: false
preferred_provider: microsoft
providers:
  openai:
    api_key: sk-test
    model: gpt-4o
  microsoft:
    api_key: ms-key
    region: westeurope
  google:
    enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CacheFile != "/tmp/cache.json" {
		t.Errorf("CacheFile = %q", cfg.CacheFile)
	}
	if cfg.MaxEntries != 500 {
		t.Errorf("MaxEntries = %d, want 500", cfg.MaxEntries)
	}
	if cfg.FlushInterval != 10*time.Second {
		t.Errorf("FlushInterval = %v, want 10s", cfg.FlushInterval)
	}
	if cfg.NumberSubstitutionEnabled() {
		t.Error("number substitution should be disabled")
	}
	if cfg.PreferredProvider != "microsoft" {
		t.Errorf("PreferredProvider = %q", cfg.PreferredProvider)
	}

	if got := cfg.Provider("openai"); got.APIKey != "sk-test" || got.Model != "gpt-4o" {
		t.Errorf("openai provider config = %+v", got)
	}
	if got := cfg.Provider("microsoft"); got.Region != "westeurope" {
		t.Errorf("microsoft provider config = %+v", got)
	}
}

func TestConfig_ProviderEnabled(t *testing.T) {
	path := writeConfig(t, `
providers:
  google:
    enabled: false
  mymemory:
    api_key: irrelevant
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ProviderEnabled("google") {
		t.Error("google should be disabled")
	}
	if !cfg.ProviderEnabled("mymemory") {
		t.Error("mymemory should default to enabled")
	}
	if !cfg.ProviderEnabled("unconfigured") {
		t.Error("unconfigured providers should default to enabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
max_entries: -5
flush_interval: 0s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxEntries != 10000 {
		t.Errorf("non-positive max_entries should fall back, got %d", cfg.MaxEntries)
	}
	if cfg.FlushInterval != 30*time.Second {
		t.Errorf("non-positive flush_interval should fall back, got %v", cfg.FlushInterval)
	}
}
