package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
listen_addr = ":9000"
allowed_origins = ["https://chat.example.com"]

[ai]
model = "gpt-4o-mini"
temperature = 0.2
max_response_tokens = 2000
api_timeout_seconds = 60
tool_timeout_seconds = 15
enable_tool_calls = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, []string{"https://chat.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.InDelta(t, 0.2, cfg.AI.Temperature, 0.0001)
	assert.Equal(t, 2000, cfg.AI.MaxResponseTokens)
	assert.Equal(t, 60, cfg.AI.APITimeoutSeconds)
	assert.Equal(t, 15, cfg.AI.ToolTimeoutSeconds)
	assert.True(t, cfg.AI.EnableToolCalls)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `listen_addr = ":9001"`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, ":9001", cfg.ListenAddr)
	assert.Equal(t, defaults.AI.Model, cfg.AI.Model)
	assert.Equal(t, defaults.AI.APITimeoutSeconds, cfg.AI.APITimeoutSeconds)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Run("rejects listen_addr without port", func(t *testing.T) {
		cfg := Default()
		cfg.ListenAddr = "localhost"
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("rejects out-of-range temperature", func(t *testing.T) {
		cfg := Default()
		cfg.AI.Temperature = 3.5
		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("reports missing fields", func(t *testing.T) {
		cfg := Default()
		cfg.ListenAddr = ""
		cfg.AI.Model = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listen_addr")
		assert.Contains(t, err.Error(), "ai.model")
	})

	t.Run("accepts defaults", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(Default()))
	})
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", GetConfigPath())

	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "./data/config.toml", GetConfigPath())
}
