package types

import "time"

// Candidate bundles one analyzed resume: the extracted record plus the
// optional score and feedback results.
type Candidate struct {
	ID       string           `json:"id,omitempty"` // uuid assigned by the pipeline
	Source   string           `json:"source"`       // source filename
	Record   *ExtractedRecord `json:"record"`
	Score    *ScoreResult     `json:"score,omitempty"`
	Feedback *FeedbackResult  `json:"feedback,omitempty"`
}

// RankedCandidate wraps a Candidate with its batch-ranking position.
// Rank is 1-based; ties keep original input order.
type RankedCandidate struct {
	Candidate
	CompositeScore float64 `json:"composite_score"`
	Rank           int     `json:"rank"`
}

// AnalysisReport is the serialized form of a single-resume analysis,
// emitted by the JSON reporter and returned by the HTTP API.
type AnalysisReport struct {
	GeneratedAt       time.Time        `json:"generated_at"`
	Source            string           `json:"source"`
	ResumeAnalysis    *ExtractedRecord `json:"resume_analysis"`
	ATSScore          *ScoreResult     `json:"ats_score,omitempty"`
	Feedback          *FeedbackResult  `json:"optimization_feedback,omitempty"`
	CompletenessScore float64          `json:"completeness_score"`
}

// RankingReport is the serialized form of a batch ranking run.
type RankingReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Total       int               `json:"total"`
	Skipped     []string          `json:"skipped,omitempty"` // files that failed to analyze
	Candidates  []RankedCandidate `json:"candidates"`
}
