package ingestion

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func loadPDF(path string) (*types.ParsedDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	pages := reader.NumPage()

	var sb bytes.Buffer
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := CleanText(sb.String())
	if text == "" {
		return nil, fmt.Errorf("%w: %s: no extractable text", ErrDecode, path)
	}

	return &types.ParsedDocument{
		Text:  text,
		Pages: pages,
	}, nil
}
