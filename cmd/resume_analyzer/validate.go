package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a report JSON file against its schema",
	Long: `Checks a generated report against the embedded JSON schema for its type (analysis or ranking).

A custom schema file can be supplied with --schema, which takes precedence over --type.`,
	RunE: runValidateCmd,
}

var (
	validateReportPath string
	validateType       string
	validateSchemaPath string
)

func init() {
	validateCommand.Flags().StringVar(&validateReportPath, "report", "", "Path to the report JSON file")
	validateCommand.Flags().StringVarP(&validateType, "type", "t", schemas.AnalysisReport, "Report type: analysis_report or ranking_report")
	validateCommand.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to a custom JSON schema file (overrides --type)")
	_ = validateCommand.MarkFlagRequired("report")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	if validateSchemaPath != "" {
		if err := schemas.ValidateReportFile(validateSchemaPath, validateReportPath); err != nil {
			return err
		}
		fmt.Printf("%s is valid against %s\n", validateReportPath, validateSchemaPath)
		return nil
	}

	document, err := os.ReadFile(validateReportPath)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	if err := schemas.ValidateReport(validateType, document); err != nil {
		return err
	}
	fmt.Printf("%s is a valid %s\n", validateReportPath, validateType)
	return nil
}
