// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is loaded from a JSON file. All fields are optional; missing
// values use defaults or must be provided via CLI flags or environment.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Candidate header for composed resumes
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Extraction
	VocabPath      string `json:"vocab_path,omitempty"`       // Skill vocabulary JSON file
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Per-file upload cap

	// Blob storage (S3-compatible); all empty means in-memory mode
	S3AccessKey    string `json:"s3_access_key,omitempty"`
	S3SecretKey    string `json:"s3_secret_key,omitempty"`
	S3Bucket       string `json:"s3_bucket,omitempty"`
	S3Region       string `json:"s3_region,omitempty"`
	S3BaseEndpoint string `json:"s3_base_endpoint,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// DefaultPort is used when neither config nor flags set one.
const DefaultPort = 8080

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

// FromEnv fills unset fields from environment variables. Explicit config
// file values win over the environment.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.VocabPath == "" {
		c.VocabPath = os.Getenv("VOCAB_PATH")
	}
	if c.S3AccessKey == "" {
		c.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	}
	if c.S3SecretKey == "" {
		c.S3SecretKey = os.Getenv("S3_SECRET_KEY")
	}
	if c.S3Bucket == "" {
		c.S3Bucket = os.Getenv("S3_BUCKET")
	}
	if c.S3Region == "" {
		c.S3Region = os.Getenv("S3_REGION")
	}
	if c.S3BaseEndpoint == "" {
		c.S3BaseEndpoint = os.Getenv("S3_BASE_ENDPOINT")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.VocabPath != "" {
		if _, err := os.Stat(c.VocabPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocab file not found: %s", c.VocabPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.Phone == "" {
		result.Phone = defaults.Phone
	}
	if result.VocabPath == "" {
		result.VocabPath = defaults.VocabPath
	}
	if result.S3AccessKey == "" {
		result.S3AccessKey = defaults.S3AccessKey
	}
	if result.S3SecretKey == "" {
		result.S3SecretKey = defaults.S3SecretKey
	}
	if result.S3Bucket == "" {
		result.S3Bucket = defaults.S3Bucket
	}
	if result.S3Region == "" {
		result.S3Region = defaults.S3Region
	}
	if result.S3BaseEndpoint == "" {
		result.S3BaseEndpoint = defaults.S3BaseEndpoint
	}

	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
