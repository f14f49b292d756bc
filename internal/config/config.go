// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the CLI configuration, loadable from a JSON file with
// environment-variable overrides. All fields are optional; missing
// values use defaults or must be provided via CLI flags.
type Config struct {
	// DataDir is the directory holding candidate documents.
	DataDir string `json:"data_dir,omitempty"`

	// DatabaseURL is the PostgreSQL connection URL for the semantic index.
	DatabaseURL string `json:"database_url,omitempty"`

	// LLM providers, tried in order. Empty keys disable a provider.
	GeminiAPIKey     string `json:"gemini_api_key,omitempty"`
	GeminiModel      string `json:"gemini_model,omitempty"`
	OpenRouterAPIKey string `json:"openrouter_api_key,omitempty"`
	OpenRouterModel  string `json:"openrouter_model,omitempty"`

	// Limits
	Workers int `json:"workers,omitempty"` // Per-run evaluation parallelism
	Limit   int `json:"limit,omitempty"`   // Maximum candidates per run

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultDataDir is used when neither config nor flags name one.
const DefaultDataDir = "data/candidates"

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills empty fields from environment variables.
func (c *Config) FromEnv() {
	setIfEmpty(&c.DataDir, "SCREENER_DATA_DIR")
	setIfEmpty(&c.DatabaseURL, "DATABASE_URL")
	setIfEmpty(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setIfEmpty(&c.GeminiModel, "GEMINI_MODEL")
	setIfEmpty(&c.OpenRouterAPIKey, "OPENROUTER_API_KEY")
	setIfEmpty(&c.OpenRouterModel, "OPENROUTER_MODEL")
	if c.Workers == 0 {
		if n, err := strconv.Atoi(os.Getenv("SCREENER_WORKERS")); err == nil {
			c.Workers = n
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.DataDir != "" {
		if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'data_dir' is not a directory: %s", c.DataDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config-file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.OpenRouterAPIKey == "" {
		result.OpenRouterAPIKey = defaults.OpenRouterAPIKey
	}
	if result.OpenRouterModel == "" {
		result.OpenRouterModel = defaults.OpenRouterModel
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	return result
}

func setIfEmpty(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}
