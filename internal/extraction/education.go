package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	educationSectionHeaders = []*regexp.Regexp{
		regexp.MustCompile(`(?i)education\s*[:\-]?`),
		regexp.MustCompile(`(?i)(?:academic|educational)\s+(?:background|qualifications)\s*[:\-]?`),
		regexp.MustCompile(`(?i)qualifications\s*[:\-]?`),
	}

	degreeKeywords = []string{
		"phd", "ph.d", "doctorate", "doctoral",
		"master", "masters", "m.s", "ms", "m.tech", "mtech", "mba", "m.b.a",
		"bachelor", "bachelors", "b.s", "bs", "b.tech", "btech", "b.e", "be", "ba", "b.a",
		"associate", "diploma", "certificate",
	}

	fieldKeywords = []string{
		"computer science", "electrical engineering", "mechanical engineering",
		"information technology", "data science", "artificial intelligence",
		"business administration", "economics", "mathematics", "physics",
		"software engineering", "civil engineering", "chemical engineering",
	}

	// Trailing class is space-only so a degree phrase never swallows the
	// institution line below it.
	degreeLongFormRes = []*regexp.Regexp{
		regexp.MustCompile(`((?:doctor|ph\.?d|doctorate) (?:of|in) [a-z ]+)`),
		regexp.MustCompile(`((?:master|m\.?s\.?|m\.?tech|mba) (?:of|in) [a-z ]+)`),
		regexp.MustCompile(`((?:bachelor|b\.?s\.?|b\.?tech|b\.?e\.?) (?:of|in) [a-z ]+)`),
	}

	fieldInRe = regexp.MustCompile(`\bin\s+([a-z\s]{5,30})`)

	// The name class excludes newlines and commas so a lazy match cannot
	// stretch across the degree line on its way to a "University" suffix.
	institutionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:from|at)\s+([A-Z][A-Za-z &.]+?(?:University|Institute|College|School))`),
		regexp.MustCompile(`([A-Z][A-Za-z &.]+?(?:University|Institute|College|School))`),
	}

	eduYearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	eduYearRangeRe = regexp.MustCompile(`(\d{4})\s*(?:[-–—]+|to)\s*(\d{4})`)

	gpaRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)gpa[:\s]+(\d+\.?\d*)\s*/?\s*(\d+\.?\d*)?`),
		regexp.MustCompile(`(?i)(?:grade|cgpa)[:\s]+(\d+\.?\d*)\s*/?\s*(\d+\.?\d*)?`),
	}

	titleCaser = cases.Title(language.English)
)

// extractEducation locates the education section, splits it into entries
// on degree-keyword or year lines, and drops any entry resolving neither
// a degree nor an institution.
func extractEducation(text string) []types.EducationEntry {
	section, ok := findSection(text, educationSectionHeaders, false)
	if !ok || section == "" {
		return nil
	}

	var entries []types.EducationEntry
	for _, block := range splitEducationBlocks(section) {
		if entry, ok := parseEducationBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func splitEducationBlocks(section string) []string {
	var blocks []string
	var current []string

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if startsEducationBlock(line) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

func startsEducationBlock(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return eduYearRe.MatchString(line)
}

func parseEducationBlock(block string) (types.EducationEntry, bool) {
	degree := extractDegree(block)
	institution := extractInstitution(block)
	if degree == "" && institution == "" {
		return types.EducationEntry{}, false
	}

	if degree == "" {
		degree = "Not specified"
	}
	if institution == "" {
		institution = "Not specified"
	}

	return types.EducationEntry{
		Degree:      degree,
		Field:       extractField(block),
		Institution: institution,
		Year:        extractEducationYear(block),
		GPA:         extractGPA(block),
	}, true
}

// extractDegree prefers long-form degree phrases ("Bachelor of Science in
// X") over abbreviation lookups.
func extractDegree(block string) string {
	lower := strings.ToLower(block)

	for _, re := range degreeLongFormRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			return titleCaser.String(strings.TrimSpace(m[1]))
		}
	}

	for _, kw := range degreeKeywords {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(lower) {
			return strings.ToUpper(kw)
		}
	}
	return ""
}

func extractField(block string) string {
	lower := strings.ToLower(block)

	for _, field := range fieldKeywords {
		if strings.Contains(lower, field) {
			return titleCaser.String(field)
		}
	}

	if m := fieldInRe.FindStringSubmatch(lower); m != nil {
		field := strings.TrimSpace(m[1])
		if len(field) > 5 {
			return titleCaser.String(field)
		}
	}
	return ""
}

// extractInstitution tries University/Institute/College/School suffix
// patterns first. The fallback accepts a line that is mostly uppercase
// and longer than 10 chars, or a short all-caps acronym line (MIT, UCLA).
func extractInstitution(block string) string {
	for _, re := range institutionRes {
		if m := re.FindStringSubmatch(block); m != nil {
			return strings.TrimRight(strings.TrimSpace(m[1]), ", ")
		}
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mostlyUppercase(line) || shortAcronym(line) {
			return line
		}
	}
	return ""
}

func mostlyUppercase(line string) bool {
	if len(line) <= 10 {
		return false
	}
	upper := 0
	for _, r := range line {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) > float64(len(line))*0.3
}

// shortAcronym matches lines of 2-10 uppercase letters, which the
// mostly-uppercase heuristic's length floor would otherwise miss.
func shortAcronym(line string) bool {
	if len(line) < 2 || len(line) > 10 {
		return false
	}
	for _, r := range line {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// extractEducationYear prefers a year range; otherwise returns the most
// recent bare 4-digit year.
func extractEducationYear(block string) string {
	if m := eduYearRangeRe.FindStringSubmatch(block); m != nil {
		return m[1] + " - " + m[2]
	}

	best := 0
	for _, m := range eduYearRe.FindAllString(block, -1) {
		if y, err := strconv.Atoi(m); err == nil && y > best {
			best = y
		}
	}
	if best == 0 {
		return ""
	}
	return strconv.Itoa(best)
}

func extractGPA(block string) string {
	for _, re := range gpaRes {
		if m := re.FindStringSubmatch(block); m != nil {
			if m[2] != "" {
				return m[1] + "/" + m[2]
			}
			return m[1]
		}
	}
	return ""
}
