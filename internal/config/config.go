// Package config provides configuration management for the docs server using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration sources, highest priority first: command-line flags,
// REACTFLOW_-prefixed environment variables, and a .reactflow-docs.yml file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Breaker BreakerConfig `yaml:"breaker" mapstructure:"breaker"`
	Docs    DocsConfig    `yaml:"docs" mapstructure:"docs"`
}

type ServerConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
}

type CacheConfig struct {
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

type BreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	ResetTimeout     time.Duration `yaml:"reset_timeout" mapstructure:"reset_timeout"`
}

type DocsConfig struct {
	// OverlayFile optionally points at a YAML file of extra topic guides.
	// The serve command watches it and reloads on change.
	OverlayFile string `yaml:"overlay_file" mapstructure:"overlay_file"`
}

// Load builds the configuration from viper's merged sources and applies
// defaults for anything unset.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Server.Name == "" {
		config.Server.Name = "reactflow-docs"
	}
	if config.Server.Version == "" {
		config.Server.Version = "dev"
	}

	if config.Logging.Level == "" {
		config.Logging.Level = viper.GetString("log-level")
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}

	if config.Cache.MaxEntries == 0 {
		config.Cache.MaxEntries = 1024
	}

	if config.Breaker.FailureThreshold == 0 {
		config.Breaker.FailureThreshold = 5
	}
	if config.Breaker.ResetTimeout == 0 {
		config.Breaker.ResetTimeout = 30 * time.Second
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for correctness.
func validateConfig(config *Config) error {
	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging config: level %q is not one of debug, info, warn, error", config.Logging.Level)
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging config: format %q is not one of text, json", config.Logging.Format)
	}

	if config.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache config: max_entries must not be negative")
	}

	if config.Breaker.FailureThreshold < 1 {
		return fmt.Errorf("breaker config: failure_threshold must be at least 1")
	}
	if config.Breaker.ResetTimeout <= 0 {
		return fmt.Errorf("breaker config: reset_timeout must be positive")
	}

	return nil
}
