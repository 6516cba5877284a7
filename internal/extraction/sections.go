// Package extraction turns raw resume text into a structured
// ExtractedRecord: contact info, skills, work experience, education,
// projects, and certifications, plus derived summary statistics.
//
// Every sub-extractor is best-effort: ambiguous or malformed input
// degrades to empty values, it never fails the document.
package extraction

import (
	"regexp"
	"strings"
)

// sectionBoundaryRe matches lines that start a new resume section. A
// located section runs until the next boundary line (or end of text).
var sectionBoundaryRe = regexp.MustCompile(`(?i)^\s*(?:` +
	`(?:work\s+)?experience|` +
	`(?:professional\s+)?employment(?:\s+history)?|` +
	`work\s+history|` +
	`career\s+(?:summary|history)|` +
	`education|` +
	`(?:academic|educational)\s+(?:background|qualifications)|` +
	`qualifications|` +
	`(?:technical\s+)?skills?|` +
	`(?:core\s+)?competencies|` +
	`expertise|` +
	`(?:academic\s+|personal\s+)?projects?|` +
	`certifications?|` +
	`licenses?\s+(?:and|&)\s+certifications?|` +
	`summary|objective|awards?|publications?|languages?|interests?` +
	`)\s*[:\-]?\s*`)

// findSection scans for the first line matching one of the header
// patterns and returns the section body: the remainder of the header line
// (text after the colon) plus following lines, up to the next section
// boundary. When stopAtBlank is set the section also ends at the first
// blank line, which matches how inline lists (skills, certifications) are
// typically laid out.
func findSection(text string, headers []*regexp.Regexp, stopAtBlank bool) (string, bool) {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		var rest string
		matched := false
		for _, re := range headers {
			loc := re.FindStringIndex(trimmed)
			if loc == nil || loc[0] != 0 {
				continue
			}
			// The keyword must end at a separator, so "Skilled in Java"
			// does not read as a skills header.
			if loc[1] < len(trimmed) && !strings.ContainsAny(trimmed[loc[1]-1:loc[1]], ": -\t") {
				continue
			}
			rest = strings.TrimSpace(trimmed[loc[1]:])
			matched = true
			break
		}
		if !matched {
			continue
		}

		var body []string
		if rest != "" {
			body = append(body, rest)
		}
		for _, next := range lines[i+1:] {
			nextTrimmed := strings.TrimSpace(next)
			if nextTrimmed == "" {
				if stopAtBlank && len(body) > 0 {
					break
				}
				body = append(body, "")
				continue
			}
			if isSectionBoundary(nextTrimmed) {
				break
			}
			body = append(body, next)
		}

		joined := strings.TrimSpace(strings.Join(body, "\n"))
		return joined, joined != ""
	}

	return "", false
}

// isSectionBoundary reports whether a trimmed line is a known section
// header, either bare ("EDUCATION") or with inline content ("Skills: Go").
func isSectionBoundary(trimmed string) bool {
	loc := sectionBoundaryRe.FindStringIndex(trimmed)
	if loc == nil || loc[0] != 0 {
		return false
	}
	remainder := trimmed[loc[1]:]
	// A bare header, a "Header:" line, or a short header line all count.
	return remainder == "" || strings.HasSuffix(strings.TrimSpace(trimmed[:loc[1]]), ":") || loc[1] == len(trimmed)
}
