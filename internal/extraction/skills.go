package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	skillsSectionHeaders = []*regexp.Regexp{
		regexp.MustCompile(`(?i)technical\s+skills?\s*[:\-]?`),
		regexp.MustCompile(`(?i)skills?\s*[:\-]?`),
		regexp.MustCompile(`(?i)core\s+competenc(?:y|ies)\s*[:\-]?`),
		regexp.MustCompile(`(?i)areas?\s+of\s+expertise\s*[:\-]?`),
	}

	skillSplitRe = regexp.MustCompile(`[,\n|•·;]+`)
)

// extractSkills matches the known vocabulary against the full text, then
// runs a second pass over the skills section to pick up terms the
// word-boundary scan can miss. Results are deduplicated and sorted.
func extractSkills(text string) types.SkillSet {
	lower := strings.ToLower(text)

	techSet := map[string]bool{}
	softSet := map[string]bool{}

	for term := range skills.Technical() {
		if termPresent(lower, term) {
			techSet[term] = true
		}
	}
	for term := range skills.Soft() {
		if termPresent(lower, term) {
			softSet[term] = true
		}
	}
	for alias, canonical := range skills.Aliases() {
		if termPresent(lower, alias) {
			techSet[canonical] = true
		}
	}

	if section, ok := findSection(text, skillsSectionHeaders, true); ok {
		for _, token := range skillSplitRe.Split(section, -1) {
			token = strings.ToLower(strings.TrimSpace(strings.Trim(token, "-* \t")))
			if token == "" {
				continue
			}
			if canonical, ok := skills.Canonical(token); ok {
				techSet[canonical] = true
				continue
			}
			if skills.IsTechnical(token) {
				techSet[token] = true
			} else if skills.IsSoft(token) {
				softSet[token] = true
			}
		}
	}

	tech := sortedKeys(techSet)
	soft := sortedKeys(softSet)
	return types.SkillSet{
		TechnicalSkills: tech,
		SoftSkills:      soft,
		TotalCount:      len(tech) + len(soft),
	}
}

// termPresent does a word-boundary match of term against lowered text.
// Terms ending in non-word characters (c++, c#) fail the trailing \b,
// matching the lookup behavior the scorer also relies on.
func termPresent(lower, term string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(lower)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
