package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the launcher configuration read from a YAML file
type File struct {
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"LogLevel"`
	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `yaml:"Metrics"`
	// Seed makes generated sequences reproducible when non-zero.
	Seed uint64 `yaml:"Seed"`
	// Pace overrides the stored animation pace when set.
	Pace *time.Duration `yaml:"Pace,omitempty"`
}

// MetricsConfig describes the metrics HTTP service
type MetricsConfig struct {
	Enabled bool   `yaml:"Enabled"`
	Address string `yaml:"Address"`
}

// DefaultMetricsAddress is used when metrics are enabled without an address
const DefaultMetricsAddress = "localhost:2112"

// DefaultFile returns the configuration used when no file is given
func DefaultFile() File {
	return File{
		LogLevel: "info",
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
	}
}

// LoadFile reads the YAML configuration at path on top of the defaults. An
// empty path returns the defaults.
func LoadFile(path string) (File, error) {
	cfg := DefaultFile()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("unable to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("problem unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values
func (f File) Validate() error {
	if f.Pace != nil && *f.Pace < 0 {
		return errors.New("pace must not be negative")
	}
	if f.Metrics.Enabled && f.Metrics.Address == "" {
		return errors.New("metrics are enabled but no address is set")
	}
	return nil
}

// MetricsAddress returns the address to serve metrics on, empty if disabled
func (f File) MetricsAddress() string {
	if !f.Metrics.Enabled {
		return ""
	}
	return f.Metrics.Address
}
