package reports

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var rankingHeader = []string{
	"Rank", "Name", "Email", "Phone",
	"Total Score", "Skills Match", "Experience Score",
	"Total Experience (Years)", "Total Skills", "Education Level",
	"Match Status", "Grade",
}

// WriteRankingCSV writes one row per ranked candidate. Fields without a
// value are written as "N/A" so spreadsheets stay aligned.
func WriteRankingCSV(report *types.RankingReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rankingHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, c := range report.Candidates {
		if err := w.Write(rankingRow(c)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv report: %w", err)
	}
	return nil
}

func rankingRow(c types.RankedCandidate) []string {
	row := []string{
		strconv.Itoa(c.Rank),
		orNA(c.Record.Contact.Name),
		orNA(c.Record.Contact.Email),
		orNA(c.Record.Contact.Phone),
	}

	if c.Score != nil {
		row = append(row,
			formatScore(c.Score.FinalScore),
			formatScore(c.Score.Breakdown.SkillsScore),
			formatScore(c.Score.Breakdown.ExperienceScore),
		)
	} else {
		row = append(row, formatScore(c.CompositeScore), "N/A", "N/A")
	}

	row = append(row,
		strconv.FormatFloat(c.Record.Summary.TotalExperienceYears, 'f', 1, 64),
		strconv.Itoa(c.Record.Summary.TotalSkills),
		orNA(c.Record.Summary.EducationLevel),
	)

	if c.Score != nil {
		row = append(row, c.Score.Status, c.Score.Grade)
	} else {
		row = append(row, "N/A", "N/A")
	}
	return row
}

// WriteSkillsComparisonCSV produces a matrix of every technical skill
// seen across the batch against each candidate.
func WriteSkillsComparisonCSV(report *types.RankingReport, path string) error {
	skillSet := map[string]bool{}
	for _, c := range report.Candidates {
		for _, skill := range c.Record.Skills.TechnicalSkills {
			skillSet[skill] = true
		}
	}
	skills := make([]string, 0, len(skillSet))
	for skill := range skillSet {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating skills comparison: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"Skill"}
	for i, c := range report.Candidates {
		name := c.Record.Contact.Name
		if name == "" {
			name = fmt.Sprintf("Candidate %d", i+1)
		}
		header = append(header, name)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing comparison header: %w", err)
	}

	for _, skill := range skills {
		row := []string{skill}
		for _, c := range report.Candidates {
			if hasSkill(c.Record.Skills.TechnicalSkills, skill) {
				row = append(row, "yes")
			} else {
				row = append(row, "no")
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing comparison row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing skills comparison: %w", err)
	}
	return nil
}

func hasSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
