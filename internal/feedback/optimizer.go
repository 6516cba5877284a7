// Package feedback turns an extracted record and its score into
// actionable, recruiter-readable guidance: critical issues, suggested
// improvements, content-quality tips, missing JD keywords, and strengths.
package feedback

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// trendingSkills groups high-value skills by domain; missing-keyword
// detection scans all of them against the JD.
var trendingSkills = map[string][]string{
	"software": {"python", "java", "javascript", "react", "aws", "docker", "kubernetes"},
	"data":     {"machine learning", "tensorflow", "pytorch", "sql", "pandas", "tableau"},
	"cloud":    {"aws", "azure", "gcp", "terraform", "jenkins", "ci/cd"},
	"general":  {"git", "agile", "rest api", "microservices"},
}

// Domain order keeps missing-keyword output deterministic.
var trendingDomains = []string{"software", "data", "cloud", "general"}

var (
	metricsRe  = regexp.MustCompile(`(?i)\d+%|\d+x|\$\d+|saved \d+|increased \d+`)
	properNoun = regexp.MustCompile(`\b([A-Z][a-zA-Z+#]{2,}(?:\.[a-z]{2,})?)\b`)
)

var weakVerbs = []string{"responsible for", "worked on", "helped with", "assisted in"}

const (
	maxProperNounScan  = 10
	maxMissingKeywords = 5
)

// Generate runs every feedback rule independently. jdText may be empty,
// in which case missing-keyword detection is skipped; score may be nil
// when the resume was analyzed without a JD.
func Generate(record *types.ExtractedRecord, jdText string, score *types.ScoreResult) types.FeedbackResult {
	result := types.FeedbackResult{
		OverallRating:  overallRating(record, score),
		CriticalIssues: criticalIssues(record),
		Improvements:   improvements(record),
		Suggestions:    contentSuggestions(record),
		StrongPoints:   strengths(record),
	}
	if strings.TrimSpace(jdText) != "" {
		result.MissingKeywords = missingKeywords(record, jdText)
	}
	result.OptimizationScore = optimizationScore(result)
	return result
}

func overallRating(record *types.ExtractedRecord, score *types.ScoreResult) string {
	if score != nil {
		switch {
		case score.FinalScore >= 85:
			return "Excellent"
		case score.FinalScore >= 70:
			return "Good"
		case score.FinalScore >= 55:
			return "Average"
		default:
			return "Needs Improvement"
		}
	}

	sections := 0
	if record.Contact.Email != "" {
		sections++
	}
	if len(record.Skills.TechnicalSkills) > 0 {
		sections++
	}
	if len(record.Experience) > 0 {
		sections++
	}
	if len(record.Education) > 0 {
		sections++
	}
	switch {
	case sections >= 4:
		return "Good"
	case sections >= 3:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

func criticalIssues(record *types.ExtractedRecord) []string {
	var issues []string

	if record.Contact.Email == "" {
		issues = append(issues, "Missing email address - critical for contact")
	}
	if record.Contact.Phone == "" {
		issues = append(issues, "Missing phone number - recommended to add")
	}
	if len(record.Experience) == 0 {
		issues = append(issues, "No work experience found - add professional experience")
	}
	if len(record.Education) == 0 {
		issues = append(issues, "No education information found - add educational background")
	}
	if len(record.Skills.TechnicalSkills) == 0 {
		issues = append(issues, "No technical skills listed - add relevant skills")
	}
	return issues
}

func improvements(record *types.ExtractedRecord) []string {
	var items []string

	techCount := len(record.Skills.TechnicalSkills)
	if techCount < 10 {
		items = append(items, fmt.Sprintf("Add more technical skills (current: %d, recommended: 10-15)", techCount))
	}

	if len(record.Experience) < 2 {
		items = append(items, "Add more work experience entries (minimum 2-3 for a better ATS score)")
	}
	for _, exp := range record.Experience {
		if len(exp.Description) < 100 {
			role := exp.Role
			if role == "" {
				role = "position"
			}
			items = append(items, fmt.Sprintf("Expand description for %q (add 3-5 bullet points with achievements)", role))
		}
	}

	switch n := len(record.Projects); {
	case n == 0:
		items = append(items, "Add a projects section to showcase practical experience")
	case n < 3:
		items = append(items, fmt.Sprintf("Add more projects (current: %d, recommended: 3-5)", n))
	}

	if len(record.Certifications) == 0 {
		items = append(items, "Add certifications if you have any (AWS, Azure, Google, etc.)")
	}
	if record.Contact.LinkedIn == "" {
		items = append(items, "Add a LinkedIn profile URL for professional networking")
	}
	if record.Contact.GitHub == "" {
		items = append(items, "Add a GitHub profile to showcase your code")
	}
	return items
}

func contentSuggestions(record *types.ExtractedRecord) []string {
	var suggestions []string

	hasMetrics := false
	for _, exp := range record.Experience {
		if metricsRe.MatchString(exp.Description) {
			hasMetrics = true
			break
		}
	}
	if !hasMetrics && len(record.Experience) > 0 {
		suggestions = append(suggestions, "Quantify achievements with metrics (e.g. 'Improved performance by 40%', 'Led team of 5 engineers')")
	}

	for _, exp := range record.Experience {
		desc := strings.ToLower(exp.Description)
		if containsAny(desc, weakVerbs) {
			suggestions = append(suggestions, "Use strong action verbs instead of passive phrases (try: Led, Developed, Implemented)")
			break
		}
	}

	for _, exp := range record.Experience {
		bullets := strings.Count(exp.Description, "\n") +
			strings.Count(exp.Description, "•") +
			strings.Count(exp.Description, "-")
		if bullets < 3 {
			suggestions = append(suggestions, "Add 3-5 bullet points per job to fully describe your responsibilities")
			break
		}
	}

	for _, edu := range record.Education {
		if edu.Year == "" {
			suggestions = append(suggestions, "Add graduation years to education entries")
			break
		}
	}

	if record.Summary.TotalExperienceYears > 5 && len(record.Experience) < 3 {
		suggestions = append(suggestions, "With 5+ years of experience, include at least 3 recent positions")
	}
	return suggestions
}

// missingKeywords reports JD-mentioned skills and technologies absent
// from the resume: the trending-skill lists first, then capitalized
// proper-noun tokens from the JD (first 10 scanned), capped at 5 overall.
func missingKeywords(record *types.ExtractedRecord, jdText string) []string {
	resumeText := strings.ToLower(keywordSearchText(record))
	jdLower := strings.ToLower(jdText)

	var missing []string
	have := map[string]bool{}
	add := func(keyword string) {
		if !have[keyword] {
			have[keyword] = true
			missing = append(missing, keyword)
		}
	}

	for _, domain := range trendingDomains {
		for _, skill := range trendingSkills[domain] {
			if strings.Contains(jdLower, skill) && !strings.Contains(resumeText, skill) {
				add(skill)
			}
		}
	}

	nouns := properNoun.FindAllString(jdText, -1)
	if len(nouns) > maxProperNounScan {
		nouns = nouns[:maxProperNounScan]
	}
	for _, noun := range nouns {
		lower := strings.ToLower(noun)
		if !strings.Contains(resumeText, lower) {
			add(lower)
		}
	}

	var out []string
	for _, keyword := range missing {
		if len(out) == maxMissingKeywords {
			break
		}
		out = append(out, fmt.Sprintf("Add '%s' keyword (mentioned in job description)", keyword))
	}
	return out
}

func strengths(record *types.ExtractedRecord) []string {
	var points []string

	if n := len(record.Skills.TechnicalSkills); n >= 15 {
		points = append(points, fmt.Sprintf("Strong technical skills portfolio (%d skills)", n))
	}
	if years := record.Summary.TotalExperienceYears; years >= 5 {
		points = append(points, fmt.Sprintf("Solid work experience (%.1f years)", years))
	}
	switch record.Summary.EducationLevel {
	case "Phd", "Doctorate", "Master", "Mba":
		points = append(points, fmt.Sprintf("Advanced degree (%s)", record.Summary.EducationLevel))
	}
	if n := len(record.Projects); n >= 3 {
		points = append(points, fmt.Sprintf("Good project portfolio (%d projects)", n))
	}
	if n := len(record.Certifications); n >= 2 {
		points = append(points, fmt.Sprintf("Professional certifications (%d)", n))
	}
	if record.Contact.Email != "" && record.Contact.Phone != "" && record.Contact.LinkedIn != "" {
		points = append(points, "Complete contact information")
	}
	return points
}

func optimizationScore(result types.FeedbackResult) int {
	score := 100
	score -= len(result.CriticalIssues) * 15
	score -= len(result.Improvements) * 5
	score -= len(result.MissingKeywords) * 3
	score += len(result.StrongPoints) * 2

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// keywordSearchText is the subset of resume text scanned for JD keyword
// presence: skills plus experience roles and descriptions.
func keywordSearchText(record *types.ExtractedRecord) string {
	var parts []string
	parts = append(parts, record.Skills.TechnicalSkills...)
	parts = append(parts, record.Skills.SoftSkills...)
	for _, exp := range record.Experience {
		parts = append(parts, exp.Role, exp.Description)
	}
	return strings.Join(parts, " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
