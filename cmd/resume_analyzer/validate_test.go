package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_ValidAnalysisReport(t *testing.T) {
	binaryPath := getBinaryPath(t)

	outPath := filepath.Join(t.TempDir(), "report.json")
	generate := exec.Command(binaryPath, "analyze",
		"--resume", "testdata/resume_alice.txt",
		"--jd", "testdata/jd.txt",
		"--output", outPath)
	generate.Env = envWithoutAPIKey()
	output, err := generate.CombinedOutput()
	require.NoError(t, err, "analyze failed: %s", string(output))

	cmd := exec.Command(binaryPath, "validate", "--report", outPath)
	output, err = cmd.CombinedOutput()

	require.NoError(t, err, "validate failed: %s", string(output))
	assert.Contains(t, string(output), "valid analysis_report")
}

func TestValidateCommand_ValidRankingReport(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := stageResumes(t)

	outPath := filepath.Join(t.TempDir(), "ranking.json")
	generate := exec.Command(binaryPath, "batch",
		"--resume-dir", dir,
		"--jd", "testdata/jd.txt",
		"--output", outPath)
	generate.Env = envWithoutAPIKey()
	output, err := generate.CombinedOutput()
	require.NoError(t, err, "batch failed: %s", string(output))

	cmd := exec.Command(binaryPath, "validate", "--report", outPath, "--type", "ranking_report")
	output, err = cmd.CombinedOutput()

	require.NoError(t, err, "validate failed: %s", string(output))
	assert.Contains(t, string(output), "valid ranking_report")
}

func TestValidateCommand_UnknownSchema(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate",
		"--report", "testdata/jd.txt",
		"--type", "nope")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown schema")
}

func TestValidateCommand_MissingSchemaFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate",
		"--report", "testdata/jd.txt",
		"--schema", "testdata/does_not_exist.schema.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "schema file not found")
}
