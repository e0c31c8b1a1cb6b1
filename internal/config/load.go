package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values. Precedence: defaults <
// file < environment.
const (
	EnvBaseURL     = "PODKEEP_BASE_URL"
	EnvDestination = "PODKEEP_DESTINATION"
	EnvWorkers     = "PODKEEP_WORKERS"
)

// Load reads, overrides, defaults, and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.HTTP.BaseURL = v
	}
	if v := os.Getenv(EnvDestination); v != "" {
		cfg.Destination = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, err)
		}
		cfg.Workers = n
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = defaultTimeout
	}
}
