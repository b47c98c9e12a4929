// Package config loads the YAML run configuration of the domset CLI.
//
// Config file locations (priority order):
//  1. --config flag
//  2. $DOMSET_CONFIG
//  3. ./domset.yaml
//
// A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/domset/domset"
)

const (
	// EnvConfigPath names the environment variable holding a config path.
	EnvConfigPath = "DOMSET_CONFIG"
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "domset.yaml"

	defaultBound    = "cover"
	defaultLogLevel = "info"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		return ConfigFileName
	}
	return ""
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultConfig returns the defaults used when no file is found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Bound == "" {
		c.Bound = defaultBound
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.SeedGreedy == nil {
		on := true
		c.SeedGreedy = &on
	}
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	if c.TimeLimit < 0 {
		return fmt.Errorf("config: time_limit %s is negative", c.TimeLimit.Duration())
	}
	if _, err := domset.ParseBoundAlgo(c.Bound); err != nil {
		return fmt.Errorf("config: bound %q: %w", c.Bound, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// SolveOptions translates the config into solver options.
func (c *Config) SolveOptions() ([]domset.Option, error) {
	bound, err := domset.ParseBoundAlgo(c.Bound)
	if err != nil {
		return nil, fmt.Errorf("config: bound %q: %w", c.Bound, err)
	}
	seed := c.SeedGreedy == nil || *c.SeedGreedy

	return []domset.Option{
		domset.WithBound(bound),
		domset.WithGreedySeed(seed),
		domset.WithTimeLimit(c.TimeLimit.Duration()),
	}, nil
}
