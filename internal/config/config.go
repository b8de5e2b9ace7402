// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Environment variable names read by FromEnv.
const (
	EnvAPIBaseURL = "JOBAPPLIER_API_URL"
	EnvAIBaseURL  = "JOBAPPLIER_AI_URL"
	EnvStateDir   = "JOBAPPLIER_STATE_DIR"
	EnvVerbose    = "JOBAPPLIER_VERBOSE"
)

// Config represents the client configuration. It can come from a JSON file,
// from the environment, or both; missing values use defaults.
type Config struct {
	APIBaseURL string `json:"api_base_url,omitempty"` // Backend API base URL
	AIBaseURL  string `json:"ai_base_url,omitempty"`  // AI service base URL
	StateDir   string `json:"state_dir,omitempty"`    // Directory for durable client state
	OutDir     string `json:"out_dir,omitempty"`      // Default directory for generated artifacts
	Verbose    bool   `json:"verbose,omitempty"`      // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// FromEnv builds a Config from the process environment. Unset variables
// leave their fields empty.
func FromEnv() *Config {
	return &Config{
		APIBaseURL: os.Getenv(EnvAPIBaseURL),
		AIBaseURL:  os.Getenv(EnvAIBaseURL),
		StateDir:   os.Getenv(EnvStateDir),
		Verbose:    os.Getenv(EnvVerbose) == "1" || os.Getenv(EnvVerbose) == "true",
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBaseURL != "" {
		if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
			return fmt.Errorf("config error: invalid api_base_url: %w", err)
		}
	}
	if c.AIBaseURL != "" {
		if _, err := url.ParseRequestURI(c.AIBaseURL); err != nil {
			return fmt.Errorf("config error: invalid ai_base_url: %w", err)
		}
	}
	if c.OutDir != "" {
		if info, err := os.Stat(c.OutDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: out_dir is not a directory: %s", c.OutDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Environment values typically merge over file values this way.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.AIBaseURL == "" {
		result.AIBaseURL = defaults.AIBaseURL
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
