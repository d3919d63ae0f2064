// Package config loads the YAML configuration of the dynbuf tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-dynbuf/buffer"
)

// Config is the top-level configuration file layout.
type Config struct {
	// Buffer is the capacity policy of the session buffer
	Buffer Buffer `yaml:"buffer"`

	// Session controls the command loop
	Session Session `yaml:"session"`

	path string
}

// Buffer holds the capacity policy.
type Buffer struct {
	MinCapacity int `yaml:"min_capacity"`
	MaxCapacity int `yaml:"max_capacity"`
	GrowthStep  int `yaml:"growth_step"`
}

// Session controls the command loop.
type Session struct {
	// StopOnError ends the session at the first failing command instead of
	// reporting the error and reading the next one
	StopOnError bool `yaml:"stop_on_error"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	l := buffer.DefaultLimits()
	return &Config{
		Buffer: Buffer{
			MinCapacity: l.Min,
			MaxCapacity: l.Max,
			GrowthStep:  l.Step,
		},
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = path

	if err := cfg.Limits().Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.New("config: empty path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	c.path = path
	return nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Limits converts the buffer section to a buffer.Limits.
func (c *Config) Limits() buffer.Limits {
	return buffer.Limits{
		Min:  c.Buffer.MinCapacity,
		Max:  c.Buffer.MaxCapacity,
		Step: c.Buffer.GrowthStep,
	}
}
