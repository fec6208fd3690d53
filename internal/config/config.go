package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database     DatabaseConfig
	Orchestrator OrchestratorConfig
	Generator    GeneratorConfig
	Monitoring   MonitoringConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// OrchestratorConfig holds navigation defaults.
type OrchestratorConfig struct {
	DefaultMode string
	SearchLimit int
}

// GeneratorConfig holds synthetic-series settings.
type GeneratorConfig struct {
	NumSinusoids    int
	FrequencyPerDay int
	DurationDays    int
	NoiseAmplitude  float64
	Seed            int64
}

// MonitoringConfig holds metric-window settings.
type MonitoringConfig struct {
	WindowSize int
	ExportDir  string
}

// Load reads configuration from file and env. Env var overrides use prefix CABLEGNOSIS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "cablegnosis", "cablegnosis.db"))
	v.SetDefault("orchestrator.default_mode", "per_wp")
	v.SetDefault("orchestrator.search_limit", 8)
	v.SetDefault("generator.num_sinusoids", 3)
	v.SetDefault("generator.frequency_per_day", 24)
	v.SetDefault("generator.duration_days", 30)
	v.SetDefault("generator.noise_amplitude", 0.05)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("monitoring.window_size", 30)
	v.SetDefault("monitoring.export_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "cablegnosis", "export"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CABLEGNOSIS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cablegnosis"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CABLEGNOSIS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultPath returns the effective config file location: the
// CABLEGNOSIS_CONFIG override, or the user config directory.
func DefaultPath() string {
	if path := os.Getenv("CABLEGNOSIS_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "cablegnosis", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("orchestrator.default_mode", cfg.Orchestrator.DefaultMode)
	v.Set("orchestrator.search_limit", cfg.Orchestrator.SearchLimit)
	v.Set("generator.num_sinusoids", cfg.Generator.NumSinusoids)
	v.Set("generator.frequency_per_day", cfg.Generator.FrequencyPerDay)
	v.Set("generator.duration_days", cfg.Generator.DurationDays)
	v.Set("generator.noise_amplitude", cfg.Generator.NoiseAmplitude)
	v.Set("generator.seed", cfg.Generator.Seed)
	v.Set("monitoring.window_size", cfg.Monitoring.WindowSize)
	v.Set("monitoring.export_dir", cfg.Monitoring.ExportDir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
