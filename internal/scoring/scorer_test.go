package scoring

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func sampleRecord() *types.ExtractedRecord {
	record := &types.ExtractedRecord{
		Contact: types.ContactInfo{Email: "jane@x.com", Phone: "5550001111"},
		Skills: types.SkillSet{
			TechnicalSkills: []string{"aws", "docker", "python", "sql"},
			SoftSkills:      []string{"leadership"},
			TotalCount:      5,
		},
		Experience: []types.ExperienceEntry{
			{
				Role:           "Software Engineer",
				Company:        "Acme",
				DurationMonths: 60,
				DurationYears:  5,
				Description:    "Built Python services on AWS with Docker and SQL databases",
			},
		},
		Education: []types.EducationEntry{
			{Degree: "Bachelor Of Science", Field: "Computer Science", Institution: "MIT"},
		},
		Projects: []types.ProjectEntry{
			{Name: "Tracker", Description: "Inventory tracker built with Python"},
		},
		Certifications: []string{"AWS Certified Solutions Architect"},
	}
	record.Summary = types.Summary{
		TotalExperienceYears: 5,
		TotalSkills:          5,
		EducationLevel:       "Bachelor",
		HasProjects:          true,
		HasCertifications:    true,
	}
	return record
}

func TestGradeBoundariesExact(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{90, "A+"},
		{89.999, "A"},
		{80, "A"},
		{79.999, "B"},
		{70, "B"},
		{60, "C"},
		{50, "D"},
		{49.999, "F"},
		{0, "F"},
		{100, "A+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "score %v", tt.score)
	}
}

func TestMatchStatusThresholds(t *testing.T) {
	assert.Equal(t, "Strong Match - Highly Recommended", MatchStatus(85))
	assert.Equal(t, "Good Match - Recommended", MatchStatus(70))
	assert.Equal(t, "Moderate Match - Consider", MatchStatus(55))
	assert.Equal(t, "Weak Match - Not Recommended", MatchStatus(54.9))
}

func TestScoreFullPipeline(t *testing.T) {
	scorer := NewScorer(TFIDFSimilarity{})
	jd := "Looking for a software engineer with 3+ years experience in Python, SQL and AWS"

	result := scorer.Score(context.Background(), sampleRecord(), jd)

	assert.GreaterOrEqual(t, result.FinalScore, 0.0)
	assert.LessOrEqual(t, result.FinalScore, 100.0)
	assert.Equal(t, 100.0, result.Breakdown.ExperienceScore)
	assert.Equal(t, 100.0, result.Breakdown.SkillsScore)
	assert.Equal(t, 100.0, result.Breakdown.FormatScore)
	assert.NotEmpty(t, result.Grade)
	assert.NotEmpty(t, result.Status)
}

func TestScoreEmptyRecordAndEmptyJD(t *testing.T) {
	scorer := NewScorer(TFIDFSimilarity{})

	result := scorer.Score(context.Background(), &types.ExtractedRecord{}, "")

	assert.GreaterOrEqual(t, result.FinalScore, 0.0)
	assert.LessOrEqual(t, result.FinalScore, 100.0)
	assert.Equal(t, 50.0, result.Breakdown.KeywordScore)
	assert.Equal(t, 70.0, result.Breakdown.SkillsScore)
	assert.Equal(t, 30.0, result.Breakdown.ExperienceScore)
	assert.Equal(t, 0.0, result.Breakdown.SemanticScore)
	assert.Equal(t, 30.0, result.Breakdown.FormatScore)
}

func TestKeywordScore(t *testing.T) {
	t.Run("full match", func(t *testing.T) {
		assert.Equal(t, 100.0, keywordScore("python developer", "Python developer"))
	})
	t.Run("partial match", func(t *testing.T) {
		score := keywordScore("python", "python rust erlang haskell")
		assert.Equal(t, 25.0, score)
	})
	t.Run("empty jd defaults", func(t *testing.T) {
		assert.Equal(t, 50.0, keywordScore("anything", ""))
	})
	t.Run("stopword only jd defaults", func(t *testing.T) {
		assert.Equal(t, 50.0, keywordScore("anything", "the and or"))
	})
}

func TestSkillsScore(t *testing.T) {
	record := sampleRecord()

	t.Run("all jd skills present", func(t *testing.T) {
		assert.Equal(t, 100.0, skillsScore(record, "needs python and sql"))
	})
	t.Run("half present", func(t *testing.T) {
		assert.Equal(t, 50.0, skillsScore(record, "needs python and react"))
	})
	t.Run("no known skills in jd defaults", func(t *testing.T) {
		assert.Equal(t, 70.0, skillsScore(record, "needs a friendly person"))
	})
}

func TestExperienceScoreTiers(t *testing.T) {
	record := sampleRecord() // 5 years

	tests := []struct {
		name string
		jd   string
		want float64
	}{
		{"meets requirement", "5 years of experience", 100},
		{"seventy percent tier", "6 years experience", 80},
		{"half tier", "9 years of experience", 60},
		{"below half", "15 years of experience", 40},
		{"no requirement", "great team", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, experienceScore(record, tt.jd))
		})
	}

	t.Run("no experience flat 30", func(t *testing.T) {
		assert.Equal(t, 30.0, experienceScore(&types.ExtractedRecord{}, "5 years experience"))
	})
}

func TestRequiredYears(t *testing.T) {
	tests := []struct {
		jd   string
		want int
	}{
		{"3+ years of experience", 3},
		{"5 years experience required", 5},
		{"minimum 4 years in the field", 4},
		{"at least 2 years", 2},
		{"2-4 years in backend work", 2},
		{"no requirement at all", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, requiredYears(tt.jd), tt.jd)
	}
}

func TestFormatScore(t *testing.T) {
	t.Run("complete resume with bonuses", func(t *testing.T) {
		assert.Equal(t, 100.0, formatScore(sampleRecord()))
	})
	t.Run("empty record", func(t *testing.T) {
		// 100 - 15 - 20 - 15 - 20
		assert.Equal(t, 30.0, formatScore(&types.ExtractedRecord{}))
	})
	t.Run("missing email only", func(t *testing.T) {
		record := sampleRecord()
		record.Contact.Email = ""
		assert.Equal(t, 95.0, formatScore(record))
	})
}

func TestTFIDFSimilarity(t *testing.T) {
	t.Run("identical documents", func(t *testing.T) {
		sim := tfidfSimilarity("python developer with sql", "python developer with sql")
		assert.InDelta(t, 1.0, sim, 1e-9)
	})
	t.Run("disjoint documents", func(t *testing.T) {
		sim := tfidfSimilarity("python sql aws", "gardening cooking painting")
		assert.Equal(t, 0.0, sim)
	})
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, tfidfSimilarity("", "python"))
	})
	t.Run("partial overlap in range", func(t *testing.T) {
		sim := tfidfSimilarity("python sql developer", "python sql analyst")
		assert.Greater(t, sim, 0.0)
		assert.Less(t, sim, 1.0)
	})
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	t.Run("short input unchanged", func(t *testing.T) {
		assert.Equal(t, "résumé", truncate("résumé"))
	})
	t.Run("ascii cut at limit", func(t *testing.T) {
		long := strings.Repeat("a", maxSemanticInput+50)
		assert.Equal(t, strings.Repeat("a", maxSemanticInput), truncate(long))
	})
	t.Run("multi-byte rune never split", func(t *testing.T) {
		// "é" starts at byte 999 and spans the cut point.
		long := strings.Repeat("a", maxSemanticInput-1) + "é" + strings.Repeat("b", 50)

		got := truncate(long)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("a", maxSemanticInput-1), got)
	})
}

func TestSimilarityStrategySelection(t *testing.T) {
	strategy, err := NewSimilarityStrategy(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "tfidf", strategy.Name())
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	keywords := extractKeywords("Python python developer the and with")
	assert.Equal(t, []string{"Python", "developer"}, keywords)
}
