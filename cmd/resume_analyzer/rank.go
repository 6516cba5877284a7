package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/ranking"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Compare two resumes head-to-head",
	Long: `Analyzes two resumes, ranks them, and prints a side-by-side comparison: winner, composite scores, and the skill/experience/education differences.

With --jd the comparison uses the ATS final scores; without it the composite falls back to the extracted-field breakdown.`,
	RunE: runRankCmd,
}

var (
	rankLeft    string
	rankRight   string
	rankJD      string
	rankAPIKey  string
	rankVerbose bool
)

func init() {
	rankCommand.Flags().StringVar(&rankLeft, "left", "", "Path to the first resume")
	rankCommand.Flags().StringVar(&rankRight, "right", "", "Path to the second resume")
	rankCommand.Flags().StringVarP(&rankJD, "jd", "j", "", "Path to job description text file (optional)")
	rankCommand.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key for embedding similarity (optional, defaults to GEMINI_API_KEY env var)")
	rankCommand.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = rankCommand.MarkFlagRequired("left")
	_ = rankCommand.MarkFlagRequired("right")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	var jdText string
	if rankJD != "" {
		text, err := ingestion.LoadJobDescription(rankJD)
		if err != nil {
			return err
		}
		jdText = text
	}

	apiKey := rankAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	analyzer, err := pipeline.NewAnalyzer(ctx, pipeline.Options{
		JDText:  jdText,
		APIKey:  apiKey,
		Verbose: rankVerbose,
	})
	if err != nil {
		return err
	}

	report, err := analyzer.AnalyzeBatch(ctx, []string{rankLeft, rankRight})
	if err != nil {
		return err
	}
	if len(report.Candidates) != 2 {
		return fmt.Errorf("comparison needs both resumes analyzed; %d of 2 succeeded", len(report.Candidates))
	}

	// AnalyzeBatch ranks by composite score; map positions back to the
	// left/right inputs by source filename.
	left, right := report.Candidates[0], report.Candidates[1]
	if left.Source != filepath.Base(rankLeft) && right.Source == filepath.Base(rankLeft) {
		left, right = right, left
	}

	cmp := ranking.Compare(left, right)
	data, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
