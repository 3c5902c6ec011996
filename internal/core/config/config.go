// Package config handles configuration loading and validation for intake.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is used when no endpoint is configured. The trailing path
// matches the landing page's form handler.
const DefaultEndpoint = "https://devpro.studio/"

// Config holds the application configuration.
type Config struct {
	// Endpoint is the URL of the contact form handler.
	Endpoint string `yaml:"endpoint"`
	// TimeoutSeconds bounds a whole submission request, upload included.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// Theme selects one of the built-in color themes.
	Theme string `yaml:"theme"`
	// Prefill pre-populates form fields for repeat senders.
	Prefill Prefill `yaml:"prefill"`
}

// Prefill holds optional default values for the contact form.
type Prefill struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Whatsapp string `yaml:"whatsapp"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		TimeoutSeconds: 30,
		Theme:          "tokyo-night",
	}
}

// Timeout returns the submission timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads the config file at path, merged over defaults. A missing file
// is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = DefaultConfig().TimeoutSeconds
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultConfig().Theme
	}

	return &cfg, nil
}

// Save writes the config as yaml to path, creating parent directories as
// needed.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
