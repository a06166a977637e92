package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/tailor",
		"name": "Test User",
		"s3_bucket": "resumes",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/tailor", cfg.DatabaseURL)
	assert.Equal(t, "Test User", cfg.Name)
	assert.Equal(t, "resumes", cfg.S3Bucket)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{MaxUploadBytes: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_upload_bytes")
}

func TestValidate_MissingVocabFile(t *testing.T) {
	cfg := &Config{VocabPath: "/nonexistent/vocab.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vocab file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Name:           "Test User",
		Port:           8080,
		MaxUploadBytes: 1 << 20,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Name:        "Default Name",
		Email:       "default@example.com",
		DatabaseURL: "postgres://localhost/tailor",
		S3Bucket:    "resumes",
	}

	partial := Config{
		Name: "Custom Name",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "Custom Name", merged.Name)

	// Default values should fill in empty fields
	assert.Equal(t, "default@example.com", merged.Email)
	assert.Equal(t, "postgres://localhost/tailor", merged.DatabaseURL)
	assert.Equal(t, "resumes", merged.S3Bucket)
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Name:  "Test",
		Email: "test@example.com",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "Test", merged.Name)
	assert.Equal(t, "test@example.com", merged.Email)
}

func TestFromEnv_ConfigFileWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("S3_BUCKET", "env-bucket")

	cfg := &Config{DatabaseURL: "postgres://file/db"}
	cfg.FromEnv()

	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
	assert.Equal(t, "env-bucket", cfg.S3Bucket)
}
