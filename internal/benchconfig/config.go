/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package benchconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config configures a teardown-bench run: how large a tree to build, what
// shape of bulk-delete workload to drive against it, and how many
// build/tear-down/refill cycles to repeat.
type Config struct {
	TreeSize int      `yaml:"tree_size"`
	Workload Workload `yaml:"workload"`
	Cycles   int      `yaml:"cycles"`
	Metrics  Metrics  `yaml:"metrics"`
	Logging  Logging  `yaml:"logging"`
}

// Workload controls the shape of the bulk-delete ranges issued per cycle.
type Workload struct {
	// Kind is "range" (rangetree.DeleteRange) or "overlap"
	// (intervaltree.DeleteOverlap).
	Kind       string `yaml:"kind"`
	BulkSize   int    `yaml:"bulk_size"`
	BulkCount  int    `yaml:"bulk_count"`
	RandomSeed int64  `yaml:"random_seed"`
}

// Metrics controls whether Prometheus metrics are collected and printed at
// the end of a run.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration for a modestly sized run.
func DefaultConfig() *Config {
	return &Config{
		TreeSize: 100_000,
		Workload: Workload{
			Kind:       "range",
			BulkSize:   1_000,
			BulkCount:  100,
			RandomSeed: 1,
		},
		Cycles: 10,
		Metrics: Metrics{
			Enabled: true,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
