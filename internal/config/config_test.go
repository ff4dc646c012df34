package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AGRIAI_LANG", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AGRIAI_LANG", "")

	dir := t.TempDir()
	yamlBody := `
gemini:
  apiKey: file-key
language: ta
logging:
  debugMode: true
  level: debug
  categories:
    api: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "ta", cfg.Language)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Categories["api"])
	// Model falls back to the default when the file omits it.
	assert.Equal(t, DefaultModel, cfg.Gemini.Model)
}

func TestEnvOverridesWin(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
gemini:
  apiKey: file-key
language: en
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("AGRIAI_LANG", "ta")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "ta", cfg.Language)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("gemini: [not: a map"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AGRIAI_LANG", "")

	dir := filepath.Join(t.TempDir(), "state")
	cfg := Default()
	cfg.Gemini.APIKey = "saved-key"
	cfg.Language = "ta"

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.Gemini.APIKey)
	assert.Equal(t, "ta", loaded.Language)
}
