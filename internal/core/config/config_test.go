package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_missingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "tokyo-night", cfg.Theme)
}

func TestLoad_mergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint: https://example.com/contact
prefill:
  name: Alice
  email: alice@example.com
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/contact", cfg.Endpoint)
	assert.Equal(t, "Alice", cfg.Prefill.Name)
	assert.Equal(t, "alice@example.com", cfg.Prefill.Email)
	// Untouched keys keep their defaults.
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "tokyo-night", cfg.Theme)
}

func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	in := DefaultConfig()
	in.Endpoint = "https://example.com/contact"
	in.Theme = "gruvbox"
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}
