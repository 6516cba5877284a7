// Package schemas validates report artifacts against the JSON Schemas
// embedded in this package.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names accepted by ValidateReport.
const (
	AnalysisReport = "analysis_report"
	RankingReport  = "ranking_report"
)

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field failure from one validation run.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports that the schema itself could not be loaded or
// parsed, as opposed to the document failing validation.
type SchemaLoadError struct {
	Name  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Name, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateReport checks a marshaled report against one of the embedded
// schemas. Returns nil on success, *ValidationError on document
// failures, *SchemaLoadError when the schema cannot be compiled.
func ValidateReport(name string, document []byte) error {
	schema, ok := embedded[name+".schema.json"]
	if !ok {
		return &SchemaLoadError{Name: name, Cause: fmt.Errorf("unknown schema")}
	}
	return validate(name, gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(document))
}

// ValidateReportFile checks a report file on disk against a schema file,
// for callers that supply their own schema instead of the embedded copies.
func ValidateReportFile(schemaPath, jsonPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("resolving schema path: %w", err)
	}
	jsonAbs, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("resolving report path: %w", err)
	}
	if _, err := os.Stat(schemaAbs); err != nil {
		return fmt.Errorf("schema file not found: %s", schemaAbs)
	}
	if _, err := os.Stat(jsonAbs); err != nil {
		return fmt.Errorf("report file not found: %s", jsonAbs)
	}

	return validate(schemaAbs,
		gojsonschema.NewReferenceLoader("file://"+schemaAbs),
		gojsonschema.NewReferenceLoader("file://"+jsonAbs))
}

func validate(name string, schema, document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{Name: name, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
