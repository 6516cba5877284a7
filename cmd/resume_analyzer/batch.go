package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/reports"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Analyze and rank a directory of resumes",
	Long: `Analyzes every supported resume in a directory concurrently and ranks the candidates by composite score.

Files that fail to load or decode are logged and skipped; they never abort the batch.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath   string
	batchResumeDir    string
	batchJD           string
	batchJDURL        string
	batchOutput       string
	batchFormat       string
	batchSkillsMatrix string
	batchTopK         int
	batchWorkers      int
	batchAPIKey       string
	batchUseBrowser   bool
	batchVerbose      bool
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCommand.Flags().StringVarP(&batchResumeDir, "resume-dir", "d", "", "Directory containing the resumes to analyze")
	batchCommand.Flags().StringVarP(&batchJD, "jd", "j", "", "Path to job description text file (mutually exclusive with --jd-url)")
	batchCommand.Flags().StringVar(&batchJDURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	batchCommand.Flags().StringVarP(&batchOutput, "output", "o", "", "Output file path (defaults to stdout)")
	batchCommand.Flags().StringVarP(&batchFormat, "format", "f", "", "Report format: json or csv")
	batchCommand.Flags().StringVar(&batchSkillsMatrix, "skills-matrix", "", "Also write a candidate-by-skill comparison CSV to this path")
	batchCommand.Flags().IntVarP(&batchTopK, "top-k", "k", 0, "Keep only the top K candidates in the output (0 keeps all)")
	batchCommand.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent analysis workers")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key for embedding similarity (optional, defaults to GEMINI_API_KEY env var)")
	batchCommand.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a boxed ranking summary")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, batchConfigPath, batchVerbose, batchOverrides)
	if err != nil {
		return err
	}

	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resume-dir is required (via flag or config)")
	}
	if cfg.Format == "pdf" {
		return fmt.Errorf("pdf output is only available for single-resume reports; use json or csv")
	}

	paths, err := pipeline.CollectResumePaths(cfg.ResumeDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported resume files found in %s", cfg.ResumeDir)
	}

	jdText, err := resolveJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	analyzer, err := pipeline.NewAnalyzer(ctx, pipeline.Options{
		JDText:  jdText,
		APIKey:  cfg.APIKey,
		Workers: cfg.Workers,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	report, err := analyzer.AnalyzeBatch(ctx, paths)
	if err != nil {
		return err
	}
	if cfg.TopK > 0 {
		report.Candidates = ranking.TopK(report.Candidates, cfg.TopK)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRanking(report)
	}

	if batchSkillsMatrix != "" {
		if err := reports.WriteSkillsComparisonCSV(report, batchSkillsMatrix); err != nil {
			return err
		}
		fmt.Printf("Wrote skills matrix to %s\n", batchSkillsMatrix)
	}

	switch cfg.Format {
	case "csv":
		if cfg.Output == "" {
			return fmt.Errorf("--output is required for csv reports")
		}
		if err := reports.WriteRankingCSV(report, cfg.Output); err != nil {
			return err
		}
		fmt.Printf("Wrote ranking CSV to %s\n", cfg.Output)
		return nil
	default:
		if cfg.Output == "" {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		if err := reports.WriteRankingJSON(report, cfg.Output); err != nil {
			return err
		}
		fmt.Printf("Wrote ranking report to %s\n", cfg.Output)
		return nil
	}
}

func batchOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("resume-dir") {
		cfg.ResumeDir = batchResumeDir
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = batchJD
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = batchJDURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = batchOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = batchFormat
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = batchTopK
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = batchUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}
}
