package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from a resume",
	Long:  `Loads a resume and prints the extracted record (contact info, skills, experience, education, projects, certifications) as JSON, without scoring or feedback.`,
	RunE:  runExtractCmd,
}

var (
	extractResume  string
	extractOutput  string
	extractVerbose bool
)

func init() {
	extractCommand.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to the resume file (.pdf, .docx, .txt, .html)")
	extractCommand.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file path (defaults to stdout)")
	extractCommand.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a boxed summary of the extracted record")
	_ = extractCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	doc, err := ingestion.Load(extractResume)
	if err != nil {
		return err
	}
	record := extraction.ExtractAll(doc.Text)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintExtractedRecord(record)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal extracted record: %w", err)
	}
	if extractOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(extractOutput, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write extracted record: %w", err)
	}
	fmt.Printf("Wrote extracted record to %s\n", extractOutput)
	return nil
}
