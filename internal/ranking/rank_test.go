package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func scoredCandidate(source string, finalScore float64) types.Candidate {
	return types.Candidate{
		Source: source,
		Record: &types.ExtractedRecord{},
		Score:  &types.ScoreResult{FinalScore: finalScore},
	}
}

func TestRankCandidatesStableTieBreak(t *testing.T) {
	candidates := []types.Candidate{
		scoredCandidate("first.pdf", 90),
		scoredCandidate("second.pdf", 70),
		scoredCandidate("third.pdf", 90),
	}

	ranked := RankCandidates(candidates)
	require.Len(t, ranked, 3)

	assert.Equal(t, "first.pdf", ranked[0].Source)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "third.pdf", ranked[1].Source)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "second.pdf", ranked[2].Source)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankCandidatesIdempotent(t *testing.T) {
	candidates := []types.Candidate{
		scoredCandidate("a.pdf", 80),
		scoredCandidate("b.pdf", 80),
		scoredCandidate("c.pdf", 95),
	}

	first := RankCandidates(candidates)

	again := make([]types.Candidate, 0, len(first))
	for _, r := range first {
		again = append(again, r.Candidate)
	}
	second := RankCandidates(again)

	for i := range first {
		assert.Equal(t, first[i].Source, second[i].Source)
		assert.Equal(t, first[i].Rank, second[i].Rank)
		assert.Equal(t, first[i].CompositeScore, second[i].CompositeScore)
	}
}

func TestCompositeScoreUsesFinalScoreWhenPresent(t *testing.T) {
	c := scoredCandidate("x.pdf", 77.5)
	c.Record = &types.ExtractedRecord{
		Skills:  types.SkillSet{TotalCount: 20},
		Summary: types.Summary{TotalExperienceYears: 10, EducationLevel: "Phd"},
	}
	assert.Equal(t, 77.5, CompositeScore(c))
}

func TestCompositeScoreFromRecord(t *testing.T) {
	c := types.Candidate{
		Record: &types.ExtractedRecord{
			Skills: types.SkillSet{TotalCount: 10},
			Projects: []types.ProjectEntry{
				{Name: "a"}, {Name: "b"},
			},
			Summary: types.Summary{
				TotalExperienceYears: 2,
				EducationLevel:       "Bachelor",
			},
		},
	}

	// skills 50*0.40 + experience 40*0.30 + education 70*0.20 + projects 50*0.10
	assert.Equal(t, 51.0, CompositeScore(c))
}

func TestCompositeScoreComponentCaps(t *testing.T) {
	c := types.Candidate{
		Record: &types.ExtractedRecord{
			Skills: types.SkillSet{TotalCount: 50},
			Projects: []types.ProjectEntry{
				{}, {}, {}, {}, {}, {},
			},
			Summary: types.Summary{
				TotalExperienceYears: 30,
				EducationLevel:       "Phd",
			},
		},
	}
	assert.Equal(t, 100.0, CompositeScore(c))
}

func TestCompositeScoreUnknownEducationDefaults(t *testing.T) {
	c := types.Candidate{
		Record: &types.ExtractedRecord{
			Summary: types.Summary{EducationLevel: "Not specified"},
		},
	}
	// education 30*0.20 only
	assert.Equal(t, 6.0, CompositeScore(c))
}

func TestTopK(t *testing.T) {
	ranked := RankCandidates([]types.Candidate{
		scoredCandidate("a.pdf", 90),
		scoredCandidate("b.pdf", 80),
		scoredCandidate("c.pdf", 70),
	})

	top := TopK(ranked, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "a.pdf", top[0].Source)

	assert.Len(t, TopK(ranked, 10), 3)
	assert.Empty(t, TopK(ranked, 0))
}

func TestCompare(t *testing.T) {
	ranked := RankCandidates([]types.Candidate{
		{
			Source: "jane.pdf",
			Record: &types.ExtractedRecord{
				Contact: types.ContactInfo{Name: "Jane Doe"},
				Skills:  types.SkillSet{TotalCount: 12},
				Summary: types.Summary{TotalExperienceYears: 6, EducationLevel: "Master"},
			},
			Score: &types.ScoreResult{FinalScore: 88},
		},
		{
			Source: "john.pdf",
			Record: &types.ExtractedRecord{
				Contact: types.ContactInfo{Name: "John Roe"},
				Skills:  types.SkillSet{TotalCount: 5},
				Summary: types.Summary{TotalExperienceYears: 2, EducationLevel: "Bachelor"},
			},
			Score: &types.ScoreResult{FinalScore: 61},
		},
	})

	cmp := Compare(ranked[0], ranked[1])

	assert.Equal(t, "left", cmp.Winner)
	assert.Equal(t, "Jane Doe", cmp.Left.Name)
	assert.Equal(t, 1, cmp.Left.Rank)
	assert.Equal(t, [2]int{12, 5}, cmp.Differences.Skills)
	assert.Equal(t, [2]string{"Master", "Bachelor"}, cmp.Differences.Education)
}

func TestCompareTie(t *testing.T) {
	a := types.RankedCandidate{CompositeScore: 50}
	b := types.RankedCandidate{CompositeScore: 50}
	assert.Equal(t, "tie", Compare(a, b).Winner)
	assert.Equal(t, "Candidate 1", Compare(a, b).Left.Name)
}
