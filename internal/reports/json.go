// Package reports serializes analysis and ranking results to JSON, CSV,
// and PDF files.
package reports

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// WriteAnalysisJSON writes a single-resume analysis report with stable,
// indented formatting.
func WriteAnalysisJSON(report *types.AnalysisReport, path string) error {
	return writeJSON(report, path)
}

// WriteRankingJSON writes a batch ranking report.
func WriteRankingJSON(report *types.RankingReport, path string) error {
	return writeJSON(report, path)
}

// MarshalAnalysis returns the indented JSON form of an analysis report,
// for callers that print to stdout or an HTTP response instead of a file.
func MarshalAnalysis(report *types.AnalysisReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling analysis report: %w", err)
	}
	return data, nil
}

func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
