package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// envWithoutAPIKey returns the current environment minus GEMINI_API_KEY
// and DATABASE_URL, so the pipeline always uses lexical similarity and
// never attempts persistence in tests.
func envWithoutAPIKey() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "GEMINI_API_KEY=") || strings.HasPrefix(e, "DATABASE_URL=") {
			continue
		}
		env = append(env, e)
	}
	return env
}

func TestAnalyzeCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")
}

func TestAnalyzeCommand_MutuallyExclusiveJD(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze",
		"--resume", "testdata/resume_alice.txt",
		"--jd", "testdata/jd.txt",
		"--jd-url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestAnalyzeCommand_RejectsCSVFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze",
		"--resume", "testdata/resume_alice.txt",
		"--format", "csv")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "csv output is only available for ranking reports")
}

func TestAnalyzeCommand_WritesJSONReport(t *testing.T) {
	binaryPath := getBinaryPath(t)

	outPath := filepath.Join(t.TempDir(), "report.json")
	cmd := exec.Command(binaryPath, "analyze",
		"--resume", "testdata/resume_alice.txt",
		"--jd", "testdata/jd.txt",
		"--output", outPath)
	cmd.Env = envWithoutAPIKey()

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze failed: %s", string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "resume_alice.txt", report.Source)
	require.NotNil(t, report.ResumeAnalysis)
	assert.Equal(t, "alice.johnson@example.com", report.ResumeAnalysis.Contact.Email)
	require.NotNil(t, report.ATSScore)
	assert.Greater(t, report.ATSScore.FinalScore, 0.0)
	assert.LessOrEqual(t, report.ATSScore.FinalScore, 100.0)
	assert.NotEmpty(t, report.ATSScore.Grade)
	require.NotNil(t, report.Feedback)
	assert.Greater(t, report.CompletenessScore, 0.0)
}

func TestAnalyzeCommand_StdoutWithoutJD(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze", "--resume", "testdata/resume_bob.txt")
	cmd.Env = envWithoutAPIKey()

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze failed: %s", string(output))

	var report types.AnalysisReport
	require.NoError(t, json.Unmarshal(output, &report))
	assert.Nil(t, report.ATSScore, "scoring should be skipped without a JD")
	require.NotNil(t, report.ResumeAnalysis)
	assert.Equal(t, "bob.smith@example.com", report.ResumeAnalysis.Contact.Email)
}
