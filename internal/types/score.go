package types

// ScoreBreakdown holds the five component scores, each in [0, 100].
type ScoreBreakdown struct {
	KeywordScore    float64 `json:"keyword_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	SemanticScore   float64 `json:"semantic_score"`
	FormatScore     float64 `json:"format_score"`
}

// ScoreResult is the output of scoring a resume against a job description.
// FinalScore is the fixed weighted combination of the breakdown components
// and is always in [0, 100].
type ScoreResult struct {
	FinalScore float64        `json:"final_score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Grade      string         `json:"grade"`  // A+, A, B, C, D, F
	Status     string         `json:"status"` // qualitative match status
}

// FeedbackResult is the optimizer's categorized feedback for one resume.
type FeedbackResult struct {
	OverallRating     string   `json:"overall_rating"`
	CriticalIssues    []string `json:"critical_issues"`
	Improvements      []string `json:"improvements"`
	Suggestions       []string `json:"suggestions"`
	MissingKeywords   []string `json:"missing_keywords"`
	StrongPoints      []string `json:"strong_points"`
	OptimizationScore int      `json:"optimization_score"`
}
