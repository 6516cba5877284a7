package feedback

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// CompletenessScore rates how filled-in a resume is on a 0-100 scale.
// Essential sections carry 60 points, optional ones the remaining 40.
func CompletenessScore(record *types.ExtractedRecord) float64 {
	score := 0.0

	if record.Contact.Email != "" {
		score += 10
	}
	if record.Contact.Phone != "" {
		score += 10
	}
	if len(record.Skills.TechnicalSkills) > 0 {
		score += 15
	}
	if len(record.Experience) > 0 {
		score += 15
	}
	if len(record.Education) > 0 {
		score += 10
	}

	if len(record.Projects) > 0 {
		score += 10
	}
	if len(record.Certifications) > 0 {
		score += 10
	}
	if record.Contact.LinkedIn != "" {
		score += 5
	}
	if record.Contact.GitHub != "" {
		score += 5
	}
	if record.Contact.Location != "" {
		score += 5
	}
	if len(record.Skills.SoftSkills) > 0 {
		score += 5
	}

	if score > 100 {
		return 100
	}
	return score
}

// KeywordDensity reports each keyword's occurrence count relative to the
// total word count of the text, as a percentage.
func KeywordDensity(text string, keywords []string) map[string]float64 {
	lower := strings.ToLower(text)
	totalWords := len(strings.Fields(lower))

	density := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		if totalWords == 0 {
			density[kw] = 0
			continue
		}
		count := strings.Count(lower, strings.ToLower(kw))
		density[kw] = float64(count) / float64(totalWords) * 100
	}
	return density
}
