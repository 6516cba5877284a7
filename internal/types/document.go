// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedDocument is the raw output of the document loader: plain text plus
// incidental metadata about the source file. It is produced once per file
// and never mutated afterwards.
type ParsedDocument struct {
	Text       string  `json:"text"`
	Format     string  `json:"format"`               // file extension, lowercase, with dot (".pdf")
	Filename   string  `json:"filename"`             // base name of the source file
	Pages      int     `json:"pages,omitempty"`      // PDF page count
	Paragraphs int     `json:"paragraphs,omitempty"` // DOCX paragraph count
	Lines      int     `json:"lines,omitempty"`      // TXT line count
	Encoding   string  `json:"encoding,omitempty"`   // encoding that successfully decoded a TXT file
	Tables     []Table `json:"tables,omitempty"`     // embedded tables, verbatim cell text
}

// Table is an embedded document table: rows of cell strings, kept verbatim.
// The scoring pipeline does not consume tables; they are surfaced for
// downstream reporting.
type Table struct {
	Rows [][]string `json:"rows"`
}
