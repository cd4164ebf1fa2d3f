package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "softblush-landing", cfg.Source)
	assert.Equal(t, "softblushSignups", cfg.CacheKey)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Empty(t, cfg.SignupEndpointURL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
signup_endpoint_url: "https://script.google.com/macros/s/abc/exec"
store_backend: sqlite
store_path: /tmp/signups.db
allowed_origins:
  - https://softblush.example
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://script.google.com/macros/s/abc/exec", cfg.SignupEndpointURL)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, "/tmp/signups.db", cfg.StorePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	// Untouched keys keep their defaults.
	assert.Equal(t, "softblushSignups", cfg.CacheKey)
}

func TestLoadConfigBadFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadConfig()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0644))
	t.Setenv("CONFIG_FILE", path)
	_, err = LoadConfig()
	assert.Error(t, err)
}
