package ingestion

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// loadDOCX reads the .docx zip archive and walks word/document.xml,
// collecting paragraph text from <w:t> runs and embedded tables from
// <w:tbl> elements verbatim.
func loadDOCX(path string) (*types.ParsedDocument, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer func() { _ = zr.Close() }()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: %s: word/document.xml not found", ErrDecode, path)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer func() { _ = rc.Close() }()

	text, paragraphs, tables, err := walkDocumentXML(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return &types.ParsedDocument{
		Text:       CleanText(text),
		Paragraphs: paragraphs,
		Tables:     tables,
	}, nil
}

// walkDocumentXML streams the OOXML body. Paragraphs (<w:p>) outside
// tables become newline-separated text; table cells (<w:tc>) accumulate
// into types.Table rows.
func walkDocumentXML(r io.Reader) (string, int, []types.Table, error) {
	decoder := xml.NewDecoder(r)

	var (
		sb         strings.Builder
		paragraphs int
		tables     []types.Table
		tableDepth int
		currentRow []string
		cell       strings.Builder
		inCell     bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					tables = append(tables, types.Table{})
				}
			case "tr":
				if tableDepth == 1 {
					currentRow = nil
				}
			case "tc":
				if tableDepth == 1 {
					inCell = true
					cell.Reset()
				}
			case "p":
				if tableDepth == 0 {
					paragraphs++
				}
			case "t":
				var content string
				if err := decoder.DecodeElement(&content, &el); err != nil {
					continue
				}
				if inCell {
					cell.WriteString(content)
				} else {
					sb.WriteString(content)
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "tbl":
				tableDepth--
			case "tr":
				if tableDepth == 1 && len(currentRow) > 0 {
					last := len(tables) - 1
					tables[last].Rows = append(tables[last].Rows, currentRow)
				}
			case "tc":
				if tableDepth == 1 && inCell {
					currentRow = append(currentRow, strings.TrimSpace(cell.String()))
					inCell = false
				}
			case "p":
				if tableDepth == 0 {
					sb.WriteString("\n")
				}
			}
		}
	}

	return sb.String(), paragraphs, tables, nil
}
