package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minProjectLength       = 20
	minCertificationLength = 5
)

var (
	projectSectionHeaders = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:academic\s+|personal\s+)?projects?\s*[:\-]?`),
	}

	certSectionHeaders = []*regexp.Regexp{
		regexp.MustCompile(`(?i)certifications?\s*[:\-]?`),
		regexp.MustCompile(`(?i)licenses?\s+(?:and|&)\s+certifications?\s*[:\-]?`),
	}

	projectSplitRe = regexp.MustCompile(`\n\s*[•·*-]\s*|\n\s*\n`)
	certSplitRe    = regexp.MustCompile(`\n\s*[•·*-]\s*|\n`)
)

func extractProjects(text string) []types.ProjectEntry {
	section, ok := findSection(text, projectSectionHeaders, false)
	if !ok || section == "" {
		return nil
	}

	var projects []types.ProjectEntry
	for _, item := range projectSplitRe.Split(section, -1) {
		item = strings.TrimSpace(item)
		if len(item) <= minProjectLength {
			continue
		}
		projects = append(projects, types.ProjectEntry{
			Name:        projectName(item),
			Description: item,
		})
	}
	return projects
}

// projectName takes the first line, or its prefix before a colon when the
// line carries an inline description.
func projectName(item string) string {
	first := item
	if idx := strings.Index(item, "\n"); idx >= 0 {
		first = item[:idx]
	}
	if idx := strings.Index(first, ":"); idx >= 0 {
		first = first[:idx]
	}
	return strings.TrimSpace(first)
}

func extractCertifications(text string) []string {
	section, ok := findSection(text, certSectionHeaders, true)
	if !ok || section == "" {
		return nil
	}

	var certs []string
	for _, item := range certSplitRe.Split(section, -1) {
		item = strings.TrimSpace(strings.Trim(item, "-* \t"))
		if len(item) > minCertificationLength {
			certs = append(certs, item)
		}
	}
	return certs
}
