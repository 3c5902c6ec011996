package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"http endpoint ok", func(c *Config) { c.Endpoint = "http://localhost:8000/" }, false},
		{"ftp endpoint rejected", func(c *Config) { c.Endpoint = "ftp://example.com/" }, true},
		{"hostless endpoint rejected", func(c *Config) { c.Endpoint = "https://" }, true},
		{"zero timeout rejected", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"huge timeout rejected", func(c *Config) { c.TimeoutSeconds = 301 }, true},
		{"unknown theme rejected", func(c *Config) { c.Theme = "solarized-disco" }, true},
		{"gruvbox theme ok", func(c *Config) { c.Theme = "gruvbox" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
