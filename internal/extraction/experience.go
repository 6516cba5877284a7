package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	experienceSectionHeaders = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:work\s+)?experience\s*[:\-]?`),
		regexp.MustCompile(`(?i)(?:professional\s+)?(?:employment|work)\s+history\s*[:\-]?`),
		regexp.MustCompile(`(?i)career\s+(?:summary|history)\s*[:\-]?`),
	}

	titleKeywords = []string{
		"engineer", "developer", "analyst", "manager", "scientist", "architect",
		"consultant", "specialist", "lead", "director", "coordinator", "designer",
		"administrator", "technician", "associate", "intern", "fellow",
	}

	monthNumbers = map[string]int{
		"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
		"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
		"aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
	}

	monthYearRe = regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|June|July|August|September|October|November|December)\s+\d{4}`)

	dateRangeRe = regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})\s*(?:[-–—]+|to)\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|Present|Current)`)
	yearRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*(?:[-–—]+|to)\s*(\d{4}|Present|Current)`)

	rolePrefixRe = regexp.MustCompile(`(?i)^(?:role|position|title):\s*`)

	companyAtRe    = regexp.MustCompile(`(?:at|@)\s+([A-Z][A-Za-z\s&,.]+?)(?:\n|,|\s+-|\s+\d{4})`)
	companyLabelRe = regexp.MustCompile(`(?i)(?:company|organization):\s*([A-Za-z\s&,.]+)`)

	yearRe = regexp.MustCompile(`\d{4}`)
)

// now is stubbed in tests so current-role durations are deterministic.
var now = time.Now

// extractExperience locates the experience section and splits it into job
// blocks on month+year lines. Blocks with neither role nor company are
// dropped. Parse failures never propagate; fields degrade to defaults.
func extractExperience(text string) []types.ExperienceEntry {
	section, ok := findSection(text, experienceSectionHeaders, false)
	if !ok || section == "" {
		return nil
	}

	var entries []types.ExperienceEntry
	for _, block := range splitJobBlocks(section) {
		if entry, ok := parseJobBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitJobBlocks uses blank lines and month+year lines as entry
// boundaries. A date line only starts a new block once the current block
// already holds one, so a role line directly above its date range stays
// in the same entry.
func splitJobBlocks(section string) []string {
	var blocks []string
	var current []string
	currentHasDate := false

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		currentHasDate = false
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if monthYearRe.MatchString(line) {
			if currentHasDate {
				flush()
			}
			currentHasDate = true
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func parseJobBlock(block string) (types.ExperienceEntry, bool) {
	role := extractRole(block)
	company := extractCompany(block)
	if role == "" && company == "" {
		return types.ExperienceEntry{}, false
	}

	start, end := extractDateRange(block)
	months := durationMonths(start, end)

	if role == "" {
		role = "Not specified"
	}
	if company == "" {
		company = "Not specified"
	}
	endDate := end
	if endDate == "" {
		endDate = "Present"
	}

	return types.ExperienceEntry{
		Role:           role,
		Company:        company,
		StartDate:      start,
		EndDate:        endDate,
		DurationMonths: months,
		DurationYears:  float64(int(float64(months)/12*10+0.5)) / 10,
		Description:    extractJobDescription(block),
		IsCurrent:      end == "",
	}, true
}

// extractRole checks the first 3 lines for a job-title keyword, falling
// back to the first line longer than 3 characters.
func extractRole(block string) string {
	lines := strings.Split(block, "\n")

	limit := len(lines)
	if limit > 3 {
		limit = 3
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				return strings.TrimSpace(rolePrefixRe.ReplaceAllString(line, ""))
			}
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 3 {
			return line
		}
	}
	return ""
}

func extractCompany(block string) string {
	for _, re := range []*regexp.Regexp{companyAtRe, companyLabelRe} {
		if m := re.FindStringSubmatch(block); m != nil {
			company := strings.TrimSpace(m[1])
			return strings.TrimRight(company, ", ")
		}
	}
	return ""
}

// extractDateRange returns normalized start/end dates; empty end means the
// role is current.
func extractDateRange(block string) (start, end string) {
	if m := dateRangeRe.FindStringSubmatch(block); m != nil {
		start = normalizeDate(m[1])
		if !strings.Contains(strings.ToLower(m[2]), "present") && !strings.Contains(strings.ToLower(m[2]), "current") {
			end = normalizeDate(m[2])
		}
		return start, end
	}
	if m := yearRangeRe.FindStringSubmatch(block); m != nil {
		start = m[1]
		if !strings.Contains(strings.ToLower(m[2]), "present") && !strings.Contains(strings.ToLower(m[2]), "current") {
			end = m[2]
		}
		return start, end
	}
	return "", ""
}

// normalizeDate converts "January 2020" to "2020-01"; bare years pass
// through unchanged.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	for name, num := range monthNumbers {
		if strings.Contains(lower, name) {
			if year := yearRe.FindString(s); year != "" {
				if num < 10 {
					return year + "-0" + strconv.Itoa(num)
				}
				return year + "-" + strconv.Itoa(num)
			}
		}
	}
	if year := yearRe.FindString(s); year != "" {
		return year
	}
	return s
}

// durationMonths computes the span between normalized dates, clamped to
// zero. An empty end date means "through today". Any unparsable input
// yields 0.
func durationMonths(start, end string) int {
	if start == "" {
		return 0
	}

	startYear, startMonth, ok := parseYearMonth(start, 1)
	if !ok {
		return 0
	}

	var endYear, endMonth int
	if end == "" {
		t := now()
		endYear, endMonth = t.Year(), int(t.Month())
	} else {
		endYear, endMonth, ok = parseYearMonth(end, 12)
		if !ok {
			return 0
		}
	}

	months := (endYear-startYear)*12 + (endMonth - startMonth)
	if months < 0 {
		return 0
	}
	return months
}

// parseYearMonth reads "YYYY-MM" or bare "YYYY"; defaultMonth fills in for
// the bare-year form.
func parseYearMonth(s string, defaultMonth int) (year, month int, ok bool) {
	if idx := strings.Index(s, "-"); idx >= 0 {
		y, err1 := strconv.Atoi(s[:idx])
		m, err2 := strconv.Atoi(s[idx+1:])
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return y, m, true
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, false
	}
	return y, defaultMonth, true
}

// extractJobDescription joins all lines past the first two that carry
// substantive content.
func extractJobDescription(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) <= 2 {
		return ""
	}

	var parts []string
	for _, line := range lines[2:] {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
