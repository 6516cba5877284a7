package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/reports"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single resume against a job description",
	Long: `Runs the full analysis pipeline over one resume: document loading -> field extraction -> ATS scoring -> feedback generation.

Without --jd or --jd-url the scoring stage is skipped and the report contains extraction and completeness results only.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeJD          string
	analyzeJDURL       string
	analyzeOutput      string
	analyzeFormat      string
	analyzeAPIKey      string
	analyzeUseBrowser  bool
	analyzeVerbose     bool
	analyzeDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the resume file (.pdf, .docx, .txt, .html)")
	analyzeCommand.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description text file (mutually exclusive with --jd-url)")
	analyzeCommand.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output file path (defaults to stdout)")
	analyzeCommand.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Report format: json or pdf")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print boxed summaries of each pipeline stage")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for embedding similarity (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for result persistence
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL to persist the report (optional, no persistence when unset)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, analyzeConfigPath, analyzeVerbose, analyzeOverrides)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Format == "csv" {
		return fmt.Errorf("csv output is only available for ranking reports; use json or pdf")
	}

	jdText, err := resolveJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	analyzer, err := pipeline.NewAnalyzer(ctx, pipeline.Options{
		JDText:  jdText,
		APIKey:  cfg.APIKey,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	report, err := analyzer.AnalyzeFile(ctx, cfg.Resume)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintExtractedRecord(report.ResumeAnalysis)
		printer.PrintScoreResult(report.ATSScore)
		printer.PrintFeedback(report.Feedback)
	}

	if cfg.DatabaseURL != "" {
		if err := persistAnalysis(ctx, cfg.DatabaseURL, report); err != nil {
			return err
		}
	}

	return writeAnalysisReport(ctx, report, cfg.Output, cfg.Format)
}

func analyzeOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = analyzeJD
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = analyzeJDURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = analyzeFormat
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
}

// loadMergedConfig implements the shared config resolution order: config
// file first, then explicit CLI flags, then defaults, then environment
// fallbacks for the API key.
func loadMergedConfig(cmd *cobra.Command, configPath string, verbose bool, applyOverrides func(*cobra.Command, *config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
		}
	}

	applyOverrides(cmd, &cfg)

	cfg = cfg.MergeWithDefaults(config.Config{
		Format:  "json",
		Workers: pipeline.DefaultWorkers,
	})

	if cfg.JD != "" && cfg.JDURL != "" {
		return cfg, fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

// resolveJobDescription returns the JD text from whichever source the
// config names, or "" when no JD was supplied.
func resolveJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.JD != "":
		return ingestion.LoadJobDescription(cfg.JD)
	case cfg.JDURL != "":
		return ingestion.FetchJobDescription(ctx, cfg.JDURL, cfg.UseBrowser, cfg.Verbose)
	default:
		return "", nil
	}
}

func persistAnalysis(ctx context.Context, databaseURL string, report *types.AnalysisReport) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := database.SaveAnalysis(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}
	fmt.Printf("Saved analysis %s\n", id)
	return nil
}

func writeAnalysisReport(ctx context.Context, report *types.AnalysisReport, output, format string) error {
	if format == "pdf" {
		if output == "" {
			return fmt.Errorf("--output is required for pdf reports")
		}
		if err := reports.WriteAnalysisPDF(ctx, report, output); err != nil {
			return err
		}
		fmt.Printf("Wrote PDF report to %s\n", output)
		return nil
	}

	if output == "" {
		data, err := reports.MarshalAnalysis(report)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	if err := reports.WriteAnalysisJSON(report, output); err != nil {
		return err
	}
	fmt.Printf("Wrote report to %s\n", output)
	return nil
}
