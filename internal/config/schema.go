package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration of the domset CLI. Command-line flags
// override the values loaded from file.
type Config struct {
	// TimeLimit bounds the search; 0 means unlimited.
	TimeLimit Duration `yaml:"time_limit,omitempty"`

	// Bound is the pruning policy: none, simple or cover.
	Bound string `yaml:"bound,omitempty"`

	// SeedGreedy enables the greedy incumbent. Nil means default (on).
	SeedGreedy *bool `yaml:"seed_greedy,omitempty"`

	// Split solves each connected component separately.
	Split bool `yaml:"split,omitempty"`

	// Verify certifies the result with the SAT oracle.
	Verify bool `yaml:"verify,omitempty"`

	// Labels prints vertex labels instead of indices.
	Labels bool `yaml:"labels,omitempty"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level,omitempty"`

	// CacheDir, if set, holds a store of proven-optimal results.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// MetricsTextfile, if set, receives a Prometheus textfile after the run.
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
}

// Duration wraps time.Duration for YAML string encoding ("90s", "2m").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
