package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"jd_url": "https://example.com/job",
		"resume_dir": "./resumes",
		"format": "csv",
		"top_k": 10,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JDURL)
	assert.Equal(t, "./resumes", cfg.ResumeDir)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 10, cfg.TopK)
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

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		JD:    "jd.txt",
		JDURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ResumeAndDirExclusive(t *testing.T) {
	cfg := &Config{
		Resume:    "resume.pdf",
		ResumeDir: "./resumes",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		TopK: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top_k")
}

func TestValidate_BadFormat(t *testing.T) {
	cfg := &Config{
		Format: "xml",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Format:  "json",
		TopK:    5,
		Workers: 8,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Format:      "json",
		Output:      "report.json",
		DatabaseURL: "postgres://localhost/resumes",
		TopK:        10,
		Workers:     8,
	}

	partial := Config{
		Format: "pdf",
		Resume: "jane.pdf",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "pdf", merged.Format)
	assert.Equal(t, "jane.pdf", merged.Resume)

	// Default values should fill in empty fields
	assert.Equal(t, "report.json", merged.Output)
	assert.Equal(t, "postgres://localhost/resumes", merged.DatabaseURL)
	assert.Equal(t, 10, merged.TopK)
	assert.Equal(t, 8, merged.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Resume: "jane.pdf",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "jane.pdf", merged.Resume)
	assert.Equal(t, 4, merged.Workers)
}
