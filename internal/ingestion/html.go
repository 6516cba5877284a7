package ingestion

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// loadHTML extracts the visible text of an HTML resume export.
func loadHTML(path string) (*types.ParsedDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := fetch.ExtractMainText(string(raw), fetch.DefaultTextSelectors())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return &types.ParsedDocument{
		Text: CleanText(text),
	}, nil
}
