// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty"`   // Path to the source resume document (PDF/DOCX/TXT/HTML)
	JD       string `json:"jd,omitempty"`       // Path to the job description text file
	Template string `json:"template,omitempty"` // Path to the output document template
	OutDir   string `json:"out_dir,omitempty"`  // Directory for pipeline run artifacts

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key (prefer GEMINI_API_KEY env var)
	Model          string `json:"model,omitempty"`           // Override for the tailoring model name
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Timeout for the text-generation call
	Force          bool   `json:"force,omitempty"`           // Overwrite existing output files
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed progress information
}

// ConfigError represents a configuration problem: an unreadable config
// file, an invalid value, or a missing credential.
//
//nolint:revive // name keeps the error taxonomy consistent across stages
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &ConfigError{Message: "config path is empty"}
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &ConfigError{Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Message: "failed to read config file " + path, Cause: err}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Message: "failed to parse config JSON", Cause: err}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation handles those after merging.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return &ConfigError{Message: "'timeout_seconds' must be non-negative"}
	}

	for _, check := range []struct{ name, path string }{
		{"resume", c.Resume},
		{"jd", c.JD},
		{"template", c.Template},
	} {
		if check.path == "" {
			continue
		}
		if _, err := os.Stat(check.path); os.IsNotExist(err) {
			return &ConfigError{Message: fmt.Sprintf("%s file not found: %s", check.name, check.path)}
		}
	}

	return nil
}

// ResolveAPIKey returns the text-generation credential, preferring the
// flag value, then the config file, then the GEMINI_API_KEY environment
// variable. A missing credential is a ConfigError so it surfaces before
// any network call is attempted.
func (c *Config) ResolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", &ConfigError{Message: "missing API credential (set GEMINI_API_KEY or use --api-key)"}
}
