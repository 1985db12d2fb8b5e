package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds defaults that would otherwise be given as flags.
type Config struct {
	// Format is the default output format for commands with a --format
	// flag
	Format string `yaml:"format"`

	// Verbose enables debug logging, as if --verbose was given
	Verbose bool `yaml:"verbose"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
