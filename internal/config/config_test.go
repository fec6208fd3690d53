package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CABLEGNOSIS_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Orchestrator.DefaultMode != "per_wp" {
		t.Errorf("default mode = %q, want per_wp", cfg.Orchestrator.DefaultMode)
	}
	if cfg.Orchestrator.SearchLimit != 8 {
		t.Errorf("search limit = %d, want 8", cfg.Orchestrator.SearchLimit)
	}
	if cfg.Monitoring.WindowSize != 30 {
		t.Errorf("window size = %d, want 30", cfg.Monitoring.WindowSize)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("CABLEGNOSIS_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Orchestrator.DefaultMode = "per_category"
	cfg.Generator.DurationDays = 7
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Orchestrator.DefaultMode != "per_category" {
		t.Errorf("reloaded mode = %q, want per_category", got.Orchestrator.DefaultMode)
	}
	if got.Generator.DurationDays != 7 {
		t.Errorf("reloaded duration = %d, want 7", got.Generator.DurationDays)
	}
}

func TestDefaultPathPrefersEnvOverride(t *testing.T) {
	t.Setenv("CABLEGNOSIS_CONFIG", "/tmp/custom.toml")
	if got := DefaultPath(); got != "/tmp/custom.toml" {
		t.Errorf("DefaultPath = %q, want env override", got)
	}
	t.Setenv("CABLEGNOSIS_CONFIG", "")
	if got := DefaultPath(); filepath.Base(got) != "config.toml" {
		t.Errorf("DefaultPath = %q, want config.toml under the config dir", got)
	}
}
