package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeA = `Jane Doe
jane@x.com
+1-555-000-1111

EXPERIENCE
Software Engineer at Acme
January 2020 - Present
Built APIs

EDUCATION
Bachelor of Science in Computer Science
MIT
2019

SKILLS
Python, SQL, Leadership`

const resumeB = `John Roe
john@y.com

SKILLS
Java
`

func writeResume(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestAnalyzer(t *testing.T, jd string) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(context.Background(), Options{JDText: jd, Workers: 2})
	require.NoError(t, err)
	return a
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeResume(t, dir, "jane.txt", resumeA)

	a := newTestAnalyzer(t, "Software engineer with python and sql, 3+ years experience")
	report, err := a.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "jane.txt", report.Source)
	assert.Equal(t, "jane@x.com", report.ResumeAnalysis.Contact.Email)
	require.NotNil(t, report.ATSScore)
	assert.GreaterOrEqual(t, report.ATSScore.FinalScore, 0.0)
	assert.LessOrEqual(t, report.ATSScore.FinalScore, 100.0)
	require.NotNil(t, report.Feedback)
	assert.Greater(t, report.CompletenessScore, 0.0)
}

func TestAnalyzeFileWithoutJDSkipsScoring(t *testing.T) {
	dir := t.TempDir()
	path := writeResume(t, dir, "jane.txt", resumeA)

	a := newTestAnalyzer(t, "")
	report, err := a.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Nil(t, report.ATSScore)
	require.NotNil(t, report.Feedback)
	assert.Empty(t, report.Feedback.MissingKeywords)
}

func TestAnalyzeFileMissing(t *testing.T) {
	a := newTestAnalyzer(t, "")
	_, err := a.AnalyzeFile(context.Background(), "/nonexistent/resume.txt")
	assert.Error(t, err)
}

func TestAnalyzeBatchSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeResume(t, dir, "jane.txt", resumeA)
	other := writeResume(t, dir, "john.txt", resumeB)
	missing := filepath.Join(dir, "gone.txt")

	a := newTestAnalyzer(t, "python developer")
	report, err := a.AnalyzeBatch(context.Background(), []string{good, other, missing})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, []string{missing}, report.Skipped)
	require.Len(t, report.Candidates, 2)
	assert.Equal(t, 1, report.Candidates[0].Rank)
	assert.NotEmpty(t, report.Candidates[0].ID)
}

func TestAnalyzeBatchPreservesInputOrderForTies(t *testing.T) {
	dir := t.TempDir()
	first := writeResume(t, dir, "a.txt", resumeA)
	second := writeResume(t, dir, "b.txt", resumeA)

	a := newTestAnalyzer(t, "python developer")
	report, err := a.AnalyzeBatch(context.Background(), []string{first, second})
	require.NoError(t, err)

	require.Len(t, report.Candidates, 2)
	assert.Equal(t, "a.txt", report.Candidates[0].Source)
	assert.Equal(t, "b.txt", report.Candidates[1].Source)
}

func TestCollectResumePaths(t *testing.T) {
	dir := t.TempDir()
	writeResume(t, dir, "b.txt", resumeB)
	writeResume(t, dir, "a.txt", resumeA)
	writeResume(t, dir, "notes.xyz", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	paths, err := CollectResumePaths(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.txt"), paths[1])
}

func TestCollectResumePathsEmptyDir(t *testing.T) {
	_, err := CollectResumePaths(t.TempDir())
	assert.Error(t, err)
}
