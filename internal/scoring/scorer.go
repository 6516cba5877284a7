// Package scoring rates an extracted resume against a job description.
// Five sub-scores (keywords, skills, experience, semantic similarity,
// format) are combined into a weighted final score with a letter grade
// and a match status.
package scoring

import (
	"context"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Sub-score weights; they sum to 1.0.
const (
	keywordWeight    = 0.30
	skillsWeight     = 0.25
	experienceWeight = 0.20
	semanticWeight   = 0.15
	formatWeight     = 0.10
)

// jdSkillKeywords are the skills commonly named literally in job
// descriptions; the skills sub-score measures overlap against these.
var jdSkillKeywords = []string{
	"python", "java", "javascript", "react", "sql", "aws", "docker",
	"kubernetes", "machine learning", "data analysis", "tensorflow",
}

var requiredYearsRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(?:minimum|at least)\s+(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)-(?:\d+)\s*years?`),
}

// Scorer holds the similarity strategy chosen at construction.
type Scorer struct {
	similarity SimilarityStrategy
}

func NewScorer(similarity SimilarityStrategy) *Scorer {
	return &Scorer{similarity: similarity}
}

// Score computes the full breakdown for a resume against a job
// description. An empty JD degrades every JD-dependent sub-score to its
// documented default; it never fails.
func (s *Scorer) Score(ctx context.Context, record *types.ExtractedRecord, jdText string) types.ScoreResult {
	resumeText := record.FlattenedText()

	breakdown := types.ScoreBreakdown{
		KeywordScore:    round2(keywordScore(resumeText, jdText)),
		SkillsScore:     round2(skillsScore(record, jdText)),
		ExperienceScore: round2(experienceScore(record, jdText)),
		SemanticScore:   round2(s.semanticScore(ctx, resumeText, jdText)),
		FormatScore:     round2(formatScore(record)),
	}

	final := breakdown.KeywordScore*keywordWeight +
		breakdown.SkillsScore*skillsWeight +
		breakdown.ExperienceScore*experienceWeight +
		breakdown.SemanticScore*semanticWeight +
		breakdown.FormatScore*formatWeight

	final = round2(final)

	return types.ScoreResult{
		FinalScore: final,
		Breakdown:  breakdown,
		Grade:      Grade(final),
		Status:     MatchStatus(final),
	}
}

// keywordScore is the fraction of meaningful JD terms found as substrings
// in the flattened resume text. A JD yielding zero keywords defaults to
// 50.
func keywordScore(resumeText, jdText string) float64 {
	keywords := extractKeywords(jdText)
	if len(keywords) == 0 {
		return 50
	}

	resumeLower := strings.ToLower(resumeText)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(resumeLower, strings.ToLower(kw)) {
			matches++
		}
	}
	return math.Min(100, float64(matches)/float64(len(keywords))*100)
}

// skillsScore measures overlap between the resume's canonical skills and
// the common JD skills literally present in the JD text. A JD naming
// none of them defaults to 70.
func skillsScore(record *types.ExtractedRecord, jdText string) float64 {
	jdLower := strings.ToLower(jdText)

	var jdSkills []string
	for _, skill := range jdSkillKeywords {
		if strings.Contains(jdLower, skill) {
			jdSkills = append(jdSkills, skill)
		}
	}
	if len(jdSkills) == 0 {
		return 70
	}

	resumeSkills := map[string]bool{}
	for _, s := range record.Skills.TechnicalSkills {
		resumeSkills[strings.ToLower(s)] = true
	}
	for _, s := range record.Skills.SoftSkills {
		resumeSkills[strings.ToLower(s)] = true
	}

	matches := 0
	for _, skill := range jdSkills {
		if resumeSkills[skill] {
			matches++
		}
	}
	return math.Min(100, float64(matches)/float64(len(jdSkills))*100)
}

// experienceScore compares total resume experience against the years the
// JD asks for. No experience at all short-circuits to a flat 30.
func experienceScore(record *types.ExtractedRecord, jdText string) float64 {
	if len(record.Experience) == 0 {
		return 30
	}

	totalYears := record.Summary.TotalExperienceYears
	required := requiredYears(jdText)
	if required == 0 {
		return math.Min(100, 50+totalYears*10)
	}

	switch {
	case totalYears >= float64(required):
		return 100
	case totalYears >= float64(required)*0.7:
		return 80
	case totalYears >= float64(required)*0.5:
		return 60
	default:
		return 40
	}
}

// requiredYears extracts the experience requirement from a JD; 0 means
// no requirement stated.
func requiredYears(jdText string) int {
	for _, re := range requiredYearsRes {
		if m := re.FindStringSubmatch(jdText); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}
	return 0
}

// semanticScore scales the strategy's 0..1 similarity to 0..100. An empty
// JD scores 0; a strategy failure falls back to a neutral 50.
func (s *Scorer) semanticScore(ctx context.Context, resumeText, jdText string) float64 {
	if strings.TrimSpace(jdText) == "" {
		return 0
	}

	sim, err := s.similarity.Similarity(ctx, resumeText, jdText)
	if err != nil {
		log.Printf("semantic similarity (%s) failed: %v", s.similarity.Name(), err)
		return 50
	}
	return math.Min(100, sim*100)
}

// formatScore checks ATS-friendly structure: essential sections deduct
// when missing, extras earn a small bonus.
func formatScore(record *types.ExtractedRecord) float64 {
	score := 100.0

	if record.Contact.Email == "" {
		score -= 15
	}
	if len(record.Experience) == 0 {
		score -= 20
	}
	if len(record.Education) == 0 {
		score -= 15
	}
	if len(record.Skills.TechnicalSkills) == 0 {
		score -= 20
	}
	if len(record.Projects) > 0 {
		score += 5
	}
	if len(record.Certifications) > 0 {
		score += 5
	}

	return math.Max(0, math.Min(100, score))
}

// Grade maps a final score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// MatchStatus maps a final score to a recruiter-facing verdict.
func MatchStatus(score float64) string {
	switch {
	case score >= 85:
		return "Strong Match - Highly Recommended"
	case score >= 70:
		return "Good Match - Recommended"
	case score >= 55:
		return "Moderate Match - Consider"
	default:
		return "Weak Match - Not Recommended"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
