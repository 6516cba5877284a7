package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SupportedExtensions lists the resume file formats the loader accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".doc", ".txt", ".html", ".htm"}
}

// IsSupported reports whether path has a loadable extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Load reads a resume file and returns its plain text plus metadata.
// It dispatches on the file extension and returns ErrFileNotFound,
// ErrUnsupportedFormat, or ErrDecode on failure.
func Load(path string) (*types.ParsedDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var doc *types.ParsedDocument
	switch ext {
	case ".txt":
		doc, err = loadTXT(path)
	case ".pdf":
		doc, err = loadPDF(path)
	case ".docx", ".doc":
		doc, err = loadDOCX(path)
	case ".html", ".htm":
		doc, err = loadHTML(path)
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s)",
			ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions(), " "))
	}
	if err != nil {
		return nil, err
	}

	doc.Format = ext
	doc.Filename = filepath.Base(path)
	return doc, nil
}
