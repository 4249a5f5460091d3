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
	Resume string `json:"resume,omitempty"` // Path to resume document JSON file
	Job    string `json:"job,omitempty"`    // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from
	Out    string `json:"out,omitempty"`    // Path to write the output artifact

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`  // Print formatted report boxes
	Parallel bool `json:"parallel,omitempty"` // Evaluate section scorers concurrently
	Port     int  `json:"port,omitempty"`     // Port for the serve command
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
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
