package filter

import (
	"regexp"
	"strings"
	"unicode"
)

// termMatcher matches any of a list of terms at the start of a word,
// case-insensitively. "intern" matches "Interns" and "internship".
type termMatcher struct {
	re *regexp.Regexp
}

func newTermMatcher(terms []string) termMatcher {
	var parts []string
	for _, t := range terms {
		//trailing spaces are significant ("rs " must not match "rsvp")
		t = strings.ToLower(strings.TrimLeft(t, " \t"))
		if strings.TrimSpace(t) == "" {
			continue
		}
		p := regexp.QuoteMeta(t)
		if isWordRune([]rune(t)[0]) {
			p = `\b` + p
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return termMatcher{}
	}
	return termMatcher{re: regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (m termMatcher) Match(text string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(text)
}

// Find returns the first matching term as written in the text.
func (m termMatcher) Find(text string) string {
	if m.re == nil {
		return ""
	}
	return m.re.FindString(text)
}
