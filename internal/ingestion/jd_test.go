package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	content := "Senior   Backend Engineer\r\n\r\nRequired: Go, PostgreSQL\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := LoadJobDescription(path)
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer\n\nRequired: Go, PostgreSQL", text)
}

func TestLoadJobDescription_FileNotFound(t *testing.T) {
	_, err := LoadJobDescription(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
