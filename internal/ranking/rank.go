// Package ranking orders a batch of scored candidates by composite score.
package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Composite weights used when a candidate has no ATS final score.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.30
	educationWeight  = 0.20
	projectsWeight   = 0.10
)

// educationScores maps the summary's education level to a component
// score; unrecognized levels fall back to 30.
var educationScores = map[string]float64{
	"Phd":       100,
	"Doctorate": 100,
	"Master":    85,
	"Mba":       85,
	"Bachelor":  70,
	"Associate": 50,
	"Diploma":   40,
}

// RankCandidates computes a composite score per candidate and returns
// them sorted descending, annotated with 1-based ranks. The sort is
// stable: candidates with equal scores keep their input order, which
// makes repeated ranking reproducible.
func RankCandidates(candidates []types.Candidate) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, types.RankedCandidate{
			Candidate:      c,
			CompositeScore: CompositeScore(c),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// CompositeScore uses the ATS final score when the candidate carries one;
// otherwise it re-derives a weighted composite from the raw record.
func CompositeScore(c types.Candidate) float64 {
	if c.Score != nil {
		return c.Score.FinalScore
	}
	if c.Record == nil {
		return 0
	}

	skills := math.Min(100, float64(c.Record.Skills.TotalCount)*5)
	experience := math.Min(100, c.Record.Summary.TotalExperienceYears*20)
	projects := math.Min(100, float64(len(c.Record.Projects))*25)

	education, ok := educationScores[c.Record.Summary.EducationLevel]
	if !ok {
		education = 30
	}

	composite := skills*skillsWeight +
		experience*experienceWeight +
		education*educationWeight +
		projects*projectsWeight

	return math.Round(composite*100) / 100
}

// TopK returns the first k ranked candidates; k larger than the list
// returns everything.
func TopK(ranked []types.RankedCandidate, k int) []types.RankedCandidate {
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// Comparison is a side-by-side view of two ranked candidates.
type Comparison struct {
	Left        ComparisonSide `json:"left"`
	Right       ComparisonSide `json:"right"`
	Winner      string         `json:"winner"`
	Differences Differences    `json:"differences"`
}

type ComparisonSide struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

type Differences struct {
	Skills          [2]int     `json:"skills"`
	ExperienceYears [2]float64 `json:"experience_years"`
	Education       [2]string  `json:"education"`
}

// Compare pits two ranked candidates against each other; Winner is
// "left", "right", or "tie".
func Compare(left, right types.RankedCandidate) Comparison {
	cmp := Comparison{
		Left:  comparisonSide(left, "Candidate 1"),
		Right: comparisonSide(right, "Candidate 2"),
	}

	switch {
	case cmp.Left.Score > cmp.Right.Score:
		cmp.Winner = "left"
	case cmp.Right.Score > cmp.Left.Score:
		cmp.Winner = "right"
	default:
		cmp.Winner = "tie"
	}

	if left.Record != nil {
		cmp.Differences.Skills[0] = left.Record.Skills.TotalCount
		cmp.Differences.ExperienceYears[0] = left.Record.Summary.TotalExperienceYears
		cmp.Differences.Education[0] = left.Record.Summary.EducationLevel
	}
	if right.Record != nil {
		cmp.Differences.Skills[1] = right.Record.Skills.TotalCount
		cmp.Differences.ExperienceYears[1] = right.Record.Summary.TotalExperienceYears
		cmp.Differences.Education[1] = right.Record.Summary.EducationLevel
	}
	return cmp
}

func comparisonSide(c types.RankedCandidate, fallback string) ComparisonSide {
	name := fallback
	if c.Record != nil && c.Record.Contact.Name != "" {
		name = c.Record.Contact.Name
	}
	return ComparisonSide{Name: name, Score: c.CompositeScore, Rank: c.Rank}
}
