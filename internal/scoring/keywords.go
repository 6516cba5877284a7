package scoring

import (
	"regexp"
	"strings"
)

var (
	keywordRe = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z+#.]{2,}\b`)

	keywordStopwords = map[string]bool{
		"the": true, "and": true, "or": true, "but": true, "in": true,
		"on": true, "at": true, "to": true, "for": true, "of": true,
		"with": true, "a": true, "an": true,
	}
)

// extractKeywords pulls meaningful terms from a job description:
// alphabetic runs of 3+ characters minus a small stopword set,
// deduplicated case-insensitively in first-seen order.
func extractKeywords(text string) []string {
	seen := map[string]bool{}
	var keywords []string

	for _, word := range keywordRe.FindAllString(text, -1) {
		lower := strings.ToLower(word)
		if keywordStopwords[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		keywords = append(keywords, word)
	}
	return keywords
}
