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
	Resume    string `json:"resume,omitempty"`     // Path to a single resume file
	ResumeDir string `json:"resume_dir,omitempty"` // Directory of resumes for batch runs
	JD        string `json:"jd,omitempty"`         // Path to job description text file
	JDURL     string `json:"jd_url,omitempty"`     // URL to fetch job description from
	Output    string `json:"output,omitempty"`     // Output file path

	// Output
	Format string `json:"format,omitempty"` // Report format: json, csv, or pdf

	// Limits
	TopK    int `json:"top_k,omitempty"`   // Truncate ranking output to the top K candidates
	Workers int `json:"workers,omitempty"` // Concurrent workers for batch analysis

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for embedding similarity
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job pages
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	JWTSecret   string `json:"jwt_secret,omitempty"`   // HMAC secret for API token signing
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Resume != "" && c.ResumeDir != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_dir' are mutually exclusive")
	}
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	switch c.Format {
	case "", "json", "csv", "pdf":
	default:
		return fmt.Errorf("config error: 'format' must be json, csv, or pdf, got %q", c.Format)
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JD)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	// Int fields: use default if zero
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Workers == 0 {
		if defaults.Workers > 0 {
			result.Workers = defaults.Workers
		} else {
			result.Workers = 4 // Default worker pool size
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
