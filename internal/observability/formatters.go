// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedRecord outputs a human-readable summary of the extracted resume.
func (p *Printer) PrintExtractedRecord(record *types.ExtractedRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	name := record.Contact.Name
	if name == "" {
		name = "(not found)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if record.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Contact.Email))
	}
	if record.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", record.Contact.Phone))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills:     %d technical, %d soft\n",
		len(record.Skills.TechnicalSkills), len(record.Skills.SoftSkills)))
	if len(record.Skills.TechnicalSkills) > 0 {
		skills := strings.Join(record.Skills.TechnicalSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  [%s]\n", skills))
	}

	sb.WriteString(fmt.Sprintf("Experience: %.1f years across %d positions\n",
		record.Summary.TotalExperienceYears, len(record.Experience)))
	count := min(len(record.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := record.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s, %s\n", exp.Role, exp.Company))
	}
	if len(record.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education:  %s", record.Summary.EducationLevel))

	p.printBox("EXTRACTED RESUME", sb.String())
}

// PrintScoreResult outputs the ATS score with its component breakdown.
func (p *Printer) PrintScoreResult(score *types.ScoreResult) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final Score: %.1f / 100 (%s)\n", score.FinalScore, score.Grade))
	sb.WriteString(fmt.Sprintf("Status:      %s\n\n", score.Status))

	sb.WriteString(fmt.Sprintf("Keywords:    %s %.1f\n", scoreBar(score.Breakdown.KeywordScore), score.Breakdown.KeywordScore))
	sb.WriteString(fmt.Sprintf("Skills:      %s %.1f\n", scoreBar(score.Breakdown.SkillsScore), score.Breakdown.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience:  %s %.1f\n", scoreBar(score.Breakdown.ExperienceScore), score.Breakdown.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Semantic:    %s %.1f\n", scoreBar(score.Breakdown.SemanticScore), score.Breakdown.SemanticScore))
	sb.WriteString(fmt.Sprintf("Format:      %s %.1f", scoreBar(score.Breakdown.FormatScore), score.Breakdown.FormatScore))

	p.printBox("ATS SCORE", sb.String())
}

// scoreBar renders a ten-segment bar for a score in [0, 100].
func scoreBar(score float64) string {
	filled := int(score / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// PrintFeedback outputs the optimizer's categorized feedback.
func (p *Printer) PrintFeedback(feedback *types.FeedbackResult) {
	if feedback == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %s (score %d/100)\n", feedback.OverallRating, feedback.OptimizationScore))

	writeSection := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n" + label + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := items[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	writeSection("Critical Issues", feedback.CriticalIssues)
	writeSection("Improvements", feedback.Improvements)
	writeSection("Missing Keywords", feedback.MissingKeywords)
	writeSection("Strong Points", feedback.StrongPoints)

	p.printBox("OPTIMIZATION FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ranked candidate table for batch runs.
func (p *Printer) PrintRanking(report *types.RankingReport) {
	if report == nil || len(report.Candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ranked %d candidates", report.Total))
	if len(report.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf(" (%d skipped)", len(report.Skipped)))
	}
	sb.WriteString("\n\n")

	count := min(len(report.Candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := report.Candidates[i]
		name := ""
		if c.Record != nil {
			name = c.Record.Contact.Name
		}
		if name == "" {
			name = c.Source
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.Rank, name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", c.CompositeScore))
		if c.Score != nil {
			sb.WriteString(fmt.Sprintf(" (%s)", c.Score.Grade))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.Candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(report.Candidates)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", sb.String())
}
