package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phoneRes are tried in priority order; first match wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
		regexp.MustCompile(`\+?\d{1,3}\s?\d{9,10}`),
	}

	linkedinRe    = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin:)\s*([a-zA-Z0-9-]+)`)
	linkedinURLRe = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`)
	githubRe      = regexp.MustCompile(`(?i)(?:github\.com/|github:)\s*([a-zA-Z0-9-]+)`)
	githubURLRe   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)

	phoneCleanRe = regexp.MustCompile(`[^\d+]`)

	// locationRes form a fallback chain: explicit label, "City, ST ZIP",
	// then "City, Country".
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i:location|address|based in)[:\s]+([A-Za-z\s,]+(?:USA|India|UK|Canada))`),
		regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2}(?:\s+\d{5})?)`),
		regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z][a-z]+)`),
	}
)

// extractContact pattern-matches contact details over the raw text.
// Every field is optional; a missing field stays empty.
func extractContact(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:     extractName(text),
		Email:    emailRe.FindString(text),
		Phone:    extractPhone(text),
		LinkedIn: extractProfile(text, linkedinRe, linkedinURLRe, "linkedin.com/in/"),
		GitHub:   extractProfile(text, githubRe, githubURLRe, "github.com/"),
		Location: extractLocation(text),
	}
}

// extractName returns the first of the first 5 non-empty lines that looks
// like a person's name: 2-4 capitalized alphabetic words and no
// email/phone match on the line.
func extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}

		if emailRe.MatchString(line) || anyPhoneMatch(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allNameWords(words) {
			return line
		}
	}
	return ""
}

// allNameWords requires every word longer than one rune to be alphabetic
// and start with an uppercase letter.
func allNameWords(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if len(runes) <= 1 {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

func anyPhoneMatch(line string) bool {
	for _, re := range phoneRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		match := re.FindString(text)
		if match == "" {
			continue
		}
		phone := phoneCleanRe.ReplaceAllString(match, "")
		if len(phone) >= 10 {
			return phone
		}
	}
	return ""
}

// extractProfile resolves a LinkedIn/GitHub handle via the labeled pattern
// first, then a bare URL fallback, and returns the normalized profile URL.
func extractProfile(text string, labeled, bare *regexp.Regexp, prefix string) string {
	if m := labeled.FindStringSubmatch(text); m != nil {
		return prefix + m[1]
	}
	if m := bare.FindStringSubmatch(text); m != nil {
		return prefix + m[1]
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range locationRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
