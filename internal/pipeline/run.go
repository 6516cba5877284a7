// Package pipeline orchestrates the analysis flow: load a document,
// extract the structured record, score it against a job description, and
// generate feedback. Batch runs fan the same flow out over a worker pool.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/feedback"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultWorkers bounds batch concurrency when Options.Workers is unset.
const DefaultWorkers = 4

// Options configures a pipeline run.
type Options struct {
	JDText  string // job description text; empty skips scoring
	APIKey  string // enables embedding-based semantic similarity
	Workers int    // batch parallelism
	Verbose bool
}

// Analyzer runs the extract/score/feedback flow. The semantic similarity
// strategy is chosen once at construction.
type Analyzer struct {
	scorer *scoring.Scorer
	opts   Options
}

func NewAnalyzer(ctx context.Context, opts Options) (*Analyzer, error) {
	strategy, err := scoring.NewSimilarityStrategy(ctx, opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("selecting similarity strategy: %w", err)
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Analyzer{scorer: scoring.NewScorer(strategy), opts: opts}, nil
}

// AnalyzeFile runs the full single-document pipeline.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*types.AnalysisReport, error) {
	doc, err := ingestion.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return a.analyze(ctx, doc), nil
}

// AnalyzeText runs the pipeline over already-loaded resume text.
func (a *Analyzer) AnalyzeText(ctx context.Context, text, source string) *types.AnalysisReport {
	return a.analyze(ctx, &types.ParsedDocument{Text: text, Filename: source})
}

func (a *Analyzer) analyze(ctx context.Context, doc *types.ParsedDocument) *types.AnalysisReport {
	if a.opts.Verbose {
		log.Printf("[VERBOSE] extracting fields from %s", doc.Filename)
	}
	record := extraction.ExtractAll(doc.Text)

	report := &types.AnalysisReport{
		GeneratedAt:       time.Now().UTC(),
		Source:            doc.Filename,
		ResumeAnalysis:    record,
		CompletenessScore: feedback.CompletenessScore(record),
	}

	var score *types.ScoreResult
	if a.opts.JDText != "" {
		s := a.scorer.Score(ctx, record, a.opts.JDText)
		score = &s
		report.ATSScore = score
	}

	fb := feedback.Generate(record, a.opts.JDText, score)
	report.Feedback = &fb

	return report
}

// AnalyzeBatch analyzes every path concurrently and ranks the results.
// Per-document failures are logged and skipped; they never abort the
// batch. Candidates keep input order before ranking so tie-breaking is
// reproducible.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, paths []string) (*types.RankingReport, error) {
	reports := make([]*types.AnalysisReport, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for i, path := range paths {
		g.Go(func() error {
			report, err := a.AnalyzeFile(gctx, path)
			if err != nil {
				errs[i] = err
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []types.Candidate
	var skipped []string
	for i, report := range reports {
		if report == nil {
			log.Printf("skipping %s: %v", paths[i], errs[i])
			skipped = append(skipped, paths[i])
			continue
		}
		candidates = append(candidates, types.Candidate{
			ID:       uuid.NewString(),
			Source:   report.Source,
			Record:   report.ResumeAnalysis,
			Score:    report.ATSScore,
			Feedback: report.Feedback,
		})
	}

	return &types.RankingReport{
		GeneratedAt: time.Now().UTC(),
		Total:       len(candidates),
		Skipped:     skipped,
		Candidates:  ranking.RankCandidates(candidates),
	}, nil
}

// CollectResumePaths lists the supported resume files directly under dir,
// sorted by name so batch input order is deterministic.
func CollectResumePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resume directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if ingestion.IsSupported(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported resume files in %s", dir)
	}
	return paths, nil
}
