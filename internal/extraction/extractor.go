package extraction

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// educationLevels is ordered highest rank first; within a rank, earlier
// keywords win ties.
var educationLevels = []struct {
	keyword string
	display string
	rank    int
}{
	{"phd", "Phd", 5},
	{"doctorate", "Doctorate", 5},
	{"master", "Master", 4},
	{"mba", "Mba", 4},
	{"bachelor", "Bachelor", 3},
	{"associate", "Associate", 2},
	{"diploma", "Diploma", 1},
}

// ExtractAll runs every sub-extractor over the document text and derives
// the summary last.
func ExtractAll(text string) *types.ExtractedRecord {
	record := &types.ExtractedRecord{
		Contact:        extractContact(text),
		Skills:         extractSkills(text),
		Experience:     extractExperience(text),
		Education:      extractEducation(text),
		Projects:       extractProjects(text),
		Certifications: extractCertifications(text),
	}
	record.Summary = deriveSummary(record)
	return record
}

func deriveSummary(record *types.ExtractedRecord) types.Summary {
	totalYears := 0.0
	for _, exp := range record.Experience {
		totalYears += exp.DurationYears
	}

	return types.Summary{
		TotalExperienceYears: totalYears,
		TotalSkills:          record.Skills.TotalCount,
		EducationLevel:       EducationLevel(record.Education),
		HasProjects:          len(record.Projects) > 0,
		HasCertifications:    len(record.Certifications) > 0,
	}
}

// EducationLevel returns the display name of the highest-ranked degree
// keyword found by substring match across all degree strings, or
// "Not specified" when none match.
func EducationLevel(education []types.EducationEntry) string {
	maxRank := 0
	name := "Not specified"

	for _, edu := range education {
		degree := strings.ToLower(edu.Degree)
		for _, level := range educationLevels {
			if strings.Contains(degree, level.keyword) && level.rank > maxRank {
				maxRank = level.rank
				name = level.display
			}
		}
	}
	return name
}
