// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package config loads fifotool settings from the environment.
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is the environment variable prefix, e.g. FIFOTOOL_LOG_LEVEL.
const Prefix = "FIFOTOOL"

// Config holds fifotool configuration.
type Config struct {
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"warn"`
	LogDevelopment bool          `envconfig:"LOG_DEV" default:"false"`
	Perm           uint32        `envconfig:"PERM" default:"0666"`
	BufferSize     int           `envconfig:"BUFFER_SIZE" default:"4096"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"0s"`
}

// FileMode returns the configured permission bits.
func (c *Config) FileMode() os.FileMode {
	return os.FileMode(c.Perm).Perm()
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if cfg.BufferSize <= 0 {
		return nil, errors.Errorf("invalid buffer size %d", cfg.BufferSize)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogLevel:   "warn",
		Perm:       0666,
		BufferSize: 4096,
	}
}
