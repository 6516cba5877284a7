package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const sampleResume = "Jane Doe\njane@x.com\n+1-555-000-1111\n\nEXPERIENCE\nSoftware Engineer at Acme\nJanuary 2020 - Present\nBuilt APIs\n\nEDUCATION\nBachelor of Science in Computer Science\nMIT\n2019\n\nSKILLS\nPython, SQL, Leadership"

func fixedNow(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func TestExtractAllEndToEnd(t *testing.T) {
	fixedNow(t)

	record := ExtractAll(sampleResume)

	assert.Equal(t, "Jane Doe", record.Contact.Name)
	assert.Equal(t, "jane@x.com", record.Contact.Email)
	assert.NotEmpty(t, record.Contact.Phone)

	assert.Contains(t, record.Skills.TechnicalSkills, "python")
	assert.Contains(t, record.Skills.TechnicalSkills, "sql")
	assert.Contains(t, record.Skills.SoftSkills, "leadership")
	assert.Equal(t, len(record.Skills.TechnicalSkills)+len(record.Skills.SoftSkills), record.Skills.TotalCount)

	require.Len(t, record.Experience, 1)
	exp := record.Experience[0]
	assert.Contains(t, exp.Company, "Acme")
	assert.True(t, exp.IsCurrent)
	assert.Equal(t, "2020-01", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)
	assert.GreaterOrEqual(t, exp.DurationMonths, 0)

	require.Len(t, record.Education, 1)
	edu := record.Education[0]
	assert.Contains(t, edu.Degree, "Bachelor")
	assert.Contains(t, edu.Institution, "MIT")

	assert.Equal(t, "Bachelor", record.Summary.EducationLevel)
	assert.Greater(t, record.Summary.TotalExperienceYears, 0.0)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first line", "John Smith\nSoftware Engineer", "John Smith"},
		{"skips email line", "john@example.com\nJohn Smith\nmore text", "John Smith"},
		{"skips phone line", "+1 555 123 4567\nMary Jane Watson\n", "Mary Jane Watson"},
		{"too many words", "John Smith Robert James Michael\n", ""},
		{"single word", "John\n", ""},
		{"lowercase rejected", "john smith\n", ""},
		{"beyond first five lines", "a1\nb2\nc3\nd4\ne5\nJohn Smith\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}

func TestExtractContactFields(t *testing.T) {
	text := "Jane Doe\njane.doe+hr@mail.example.org\nPhone: (555) 123-4567\nlinkedin.com/in/janedoe\ngithub.com/jdoe\nLocation: Boston, USA"

	contact := extractContact(text)

	assert.Equal(t, "jane.doe+hr@mail.example.org", contact.Email)
	assert.Equal(t, "5551234567", contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", contact.LinkedIn)
	assert.Equal(t, "github.com/jdoe", contact.GitHub)
	assert.Equal(t, "Boston, USA", contact.Location)
}

func TestExtractContactMissingFieldsStayEmpty(t *testing.T) {
	contact := extractContact("just some text without anything useful")

	assert.Empty(t, contact.Name)
	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Empty(t, contact.LinkedIn)
	assert.Empty(t, contact.GitHub)
}

func TestExtractSkillsAliases(t *testing.T) {
	skills := extractSkills("Worked with k8s and ml pipelines using js frameworks")

	assert.Contains(t, skills.TechnicalSkills, "kubernetes")
	assert.Contains(t, skills.TechnicalSkills, "machine learning")
	assert.Contains(t, skills.TechnicalSkills, "javascript")
	assert.NotContains(t, skills.TechnicalSkills, "k8s")
	assert.NotContains(t, skills.TechnicalSkills, "js")
}

func TestExtractSkillsVocabularyScanOutsideSection(t *testing.T) {
	// No SKILLS header: only the full-text vocabulary scan can find these.
	skills := extractSkills("EXPERIENCE\nBuilt Python services on AWS in a team valuing communication and leadership")

	assert.Contains(t, skills.TechnicalSkills, "python")
	assert.Contains(t, skills.TechnicalSkills, "aws")
	assert.Contains(t, skills.SoftSkills, "communication")
	assert.Contains(t, skills.SoftSkills, "leadership")
}

func TestExtractSkillsSectionPass(t *testing.T) {
	skills := extractSkills("SKILLS\nPython, AWS, Leadership\n\nEXPERIENCE\nnone")

	assert.Contains(t, skills.TechnicalSkills, "python")
	assert.Contains(t, skills.TechnicalSkills, "aws")
	assert.Contains(t, skills.SoftSkills, "leadership")
	assert.Equal(t, len(skills.TechnicalSkills)+len(skills.SoftSkills), skills.TotalCount)
}

func TestExtractSkillsClosedVocabulary(t *testing.T) {
	skills := extractSkills("Skills: underwater basket weaving, python")

	assert.Contains(t, skills.TechnicalSkills, "python")
	assert.NotContains(t, skills.TechnicalSkills, "underwater basket weaving")
}

func TestExtractSkillsSortedAndDeduplicated(t *testing.T) {
	skills := extractSkills("python PYTHON Python and sql plus aws")

	assert.Equal(t, []string{"aws", "python", "sql"}, skills.TechnicalSkills)
}

func TestExtractExperienceMultipleJobs(t *testing.T) {
	fixedNow(t)
	text := `EXPERIENCE
Senior Developer at Initech
June 2018 - December 2020
Led the billing platform rewrite across three teams

Analyst at Globex Corporation
January 2021 - Present
Owns reporting dashboards used by management`

	entries := extractExperience(text)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Developer at Initech", first.Role)
	assert.Equal(t, "Initech", first.Company)
	assert.Equal(t, "2018-06", first.StartDate)
	assert.Equal(t, "2020-12", first.EndDate)
	assert.Equal(t, 30, first.DurationMonths)
	assert.False(t, first.IsCurrent)

	second := entries[1]
	assert.Equal(t, "Globex Corporation", second.Company)
	assert.True(t, second.IsCurrent)
	assert.Equal(t, "Present", second.EndDate)
	assert.Equal(t, 53, second.DurationMonths)
}

func TestExtractExperienceNoSection(t *testing.T) {
	assert.Empty(t, extractExperience("EDUCATION\nBachelor of Arts\nState University"))
}

func TestDurationMonthsNeverNegative(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"end before start clamps", "2022-06", "2020-01", 0},
		{"same month", "2020-03", "2020-03", 0},
		{"year only pair", "2018", "2020", 35},
		{"unparsable start", "sometime", "2020-01", 0},
		{"empty start", "", "2020-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationMonths(tt.start, tt.end))
		})
	}
}

func TestExtractEducationEntry(t *testing.T) {
	text := "EDUCATION\nMaster of Science in Data Science, Stanford University, 2018 - 2020, GPA: 3.8/4.0"

	entries := extractEducation(text)
	require.Len(t, entries, 1)

	edu := entries[0]
	assert.Contains(t, edu.Degree, "Master")
	assert.Equal(t, "Data Science", edu.Field)
	assert.Equal(t, "Stanford University", edu.Institution)
	assert.Equal(t, "2018 - 2020", edu.Year)
	assert.Equal(t, "3.8/4.0", edu.GPA)
}

func TestExtractEducationAcronymInstitution(t *testing.T) {
	entries := extractEducation("EDUCATION\nBachelor of Science in Computer Science\nMIT")
	require.Len(t, entries, 1)
	assert.Equal(t, "MIT", entries[0].Institution)
}

func TestExtractEducationDropsEmptyEntries(t *testing.T) {
	assert.Empty(t, extractEducation("EDUCATION\n2019"))
}

func TestEducationLevelRanking(t *testing.T) {
	tests := []struct {
		name    string
		degrees []string
		want    string
	}{
		{"bachelor", []string{"Bachelor Of Science"}, "Bachelor"},
		{"highest wins", []string{"Bachelor Of Arts", "Master Of Science"}, "Master"},
		{"phd", []string{"PhD in Physics"}, "Phd"},
		{"mba", []string{"MBA"}, "Mba"},
		{"unknown degree", []string{"Certificate Of Completion"}, "Not specified"},
		{"no entries", nil, "Not specified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EducationLevel(educationEntries(tt.degrees)))
		})
	}
}

func educationEntries(degrees []string) []types.EducationEntry {
	out := make([]types.EducationEntry, 0, len(degrees))
	for _, d := range degrees {
		out = append(out, types.EducationEntry{Degree: d})
	}
	return out
}

func TestExtractProjectsLengthThreshold(t *testing.T) {
	text := `PROJECTS
Inventory Tracker: real-time stock dashboard built with React and Go
- Tiny
- Chat Server: distributed message relay handling thousands of clients`

	projects := extractProjects(text)
	require.Len(t, projects, 2)
	assert.Equal(t, "Inventory Tracker", projects[0].Name)
	assert.Equal(t, "Chat Server", projects[1].Name)
}

func TestExtractCertifications(t *testing.T) {
	text := `CERTIFICATIONS
AWS Certified Solutions Architect
- CKA
Google Professional Data Engineer`

	certs := extractCertifications(text)
	assert.Contains(t, certs, "AWS Certified Solutions Architect")
	assert.Contains(t, certs, "Google Professional Data Engineer")
	assert.NotContains(t, certs, "CKA")
}

func TestFindSectionStopsAtNextHeader(t *testing.T) {
	body, ok := findSection(sampleResume, experienceSectionHeaders, false)
	require.True(t, ok)
	assert.Contains(t, body, "Acme")
	assert.NotContains(t, body, "MIT")
}

func TestFindSectionIgnoresMidWordMatches(t *testing.T) {
	_, ok := findSection("Skilled in woodworking\nand carpentry", skillsSectionHeaders, true)
	assert.False(t, ok)
}
