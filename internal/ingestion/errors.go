// Package ingestion converts resume files (PDF, DOCX, TXT, HTML) into plain
// text plus incidental metadata, and fetches job-description text from
// files or URLs.
package ingestion

import "errors"

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnsupportedFormat is returned for extensions outside the
	// supported set (.pdf, .docx, .doc, .txt, .html, .htm).
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrDecode is returned when no supported text encoding can decode
	// the file, or when the format-specific extractor fails.
	ErrDecode = errors.New("could not decode file")
)
