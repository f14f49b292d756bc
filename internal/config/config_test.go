package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidJSON(t *testing.T) {
	content := `{
		"data_dir": "data/candidates",
		"database_url": "postgres://localhost/screener",
		"gemini_api_key": "test-key",
		"workers": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/candidates", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/screener", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SCREENER_DATA_DIR", "/tmp/resumes")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("SCREENER_WORKERS", "3")

	cfg := Config{GeminiAPIKey: "explicit-key"}
	cfg.FromEnv()

	assert.Equal(t, "/tmp/resumes", cfg.DataDir)
	assert.Equal(t, "explicit-key", cfg.GeminiAPIKey, "explicit value must win over env")
	assert.Equal(t, 3, cfg.Workers)
}

func TestValidate(t *testing.T) {
	cfg := Config{Workers: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Limit: -5}
	assert.Error(t, cfg.Validate())

	cfg = Config{Workers: 4, Limit: 10}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_DataDirIsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	cfg := Config{DataDir: tmpFile}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DataDir: "explicit", Workers: 2}
	defaults := Config{DataDir: "default", DatabaseURL: "postgres://db", Workers: 8, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "explicit", merged.DataDir)
	assert.Equal(t, "postgres://db", merged.DatabaseURL)
	assert.Equal(t, 2, merged.Workers)
	assert.True(t, merged.Verbose)
}
