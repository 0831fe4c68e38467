package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SERVER_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "GROQ_API_KEY", "GROQ_BASE_URL", "GROQ_MODEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Provider.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1/", cfg.Provider.BaseURL)
	assert.Empty(t, cfg.Provider.APIKey)
	assert.Zero(t, cfg.Limiter.MaxConcurrent)
	assert.Zero(t, cfg.HTTPClient.TimeoutSeconds)
}

func TestLoadFile_YAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
log:
  level: debug
  format: console
provider:
  model: llama-3.3-70b-versatile
limiter:
  max_concurrent: 4
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Provider.Model)
	assert.Equal(t, 4, cfg.Limiter.MaxConcurrent)
	// untouched keys keep their defaults
	assert.Equal(t, "https://api.groq.com/openai/v1/", cfg.Provider.BaseURL)
}

func TestLoadFile_TOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
addr = ":7070"

[provider]
base_url = "http://localhost:11434/v1/"
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:11434/v1/", cfg.Provider.BaseURL)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "override-model")
	t.Setenv("SERVER_ADDR", ":1234")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider:\n  model: file-model\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "gsk_test", cfg.Provider.APIKey)
	assert.Equal(t, "override-model", cfg.Provider.Model)
	assert.Equal(t, ":1234", cfg.Server.Addr)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_ExampleMatchesDefaults(t *testing.T) {
	clearEnv(t)

	example, err := LoadFile(filepath.Join("..", "..", "..", "config.example.yaml"))
	require.NoError(t, err)
	defaults, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Zero(t, example.HTTPClient.TimeoutSeconds)
	assert.Zero(t, example.Limiter.MaxConcurrent)
	assert.Equal(t, defaults.Provider, example.Provider)
	assert.Equal(t, defaults.Server, example.Server)
}
