// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied by MergeWithDefaults and the server
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 5 << 20
	DefaultConcurrency    = 4
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Analysis
	SkillsCatalog    string `json:"skills_catalog,omitempty"`    // Path to a YAML skill catalog
	TargetDepartment string `json:"target_department,omitempty"` // Department scored as a match

	// Behavior
	Verbose        bool `json:"verbose,omitempty"`         // Print a human-readable report
	ValidateOutput bool `json:"validate_output,omitempty"` // Check results against the JSON schema
	Concurrency    int  `json:"concurrency,omitempty"`     // Files analyzed in parallel

	// Server
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	Port           int    `json:"port,omitempty"`             // HTTP listen port
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Largest accepted upload
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.SkillsCatalog != "" {
		if _, err := os.Stat(c.SkillsCatalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills catalog not found: %s", c.SkillsCatalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the package defaults for the numeric limits.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.SkillsCatalog == "" {
		result.SkillsCatalog = defaults.SkillsCatalog
	}
	if result.TargetDepartment == "" {
		result.TargetDepartment = defaults.TargetDepartment
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Concurrency == 0 {
		result.Concurrency = DefaultConcurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = DefaultMaxUploadBytes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
