package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/ranking"
)

func TestRankCommand_RequiresBothSides(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "rank", "--left", "testdata/resume_alice.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "right")
}

func TestRankCommand_ComparesResumes(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "rank",
		"--left", "testdata/resume_alice.txt",
		"--right", "testdata/resume_bob.txt",
		"--jd", "testdata/jd.txt")
	cmd.Env = envWithoutAPIKey()

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "rank failed: %s", string(output))

	var cmp ranking.Comparison
	require.NoError(t, json.Unmarshal(output, &cmp))

	assert.Equal(t, "Alice Johnson", cmp.Left.Name)
	assert.Equal(t, "Bob Smith", cmp.Right.Name)
	assert.Equal(t, "left", cmp.Winner)
	assert.Greater(t, cmp.Differences.Skills[0], cmp.Differences.Skills[1])
}
