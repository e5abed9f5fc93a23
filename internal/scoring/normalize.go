package scoring

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"go-internship-agent/internal/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	//legal and generic suffixes; longer forms first so "private limited" wins over "limited"
	companySuffixRe = regexp.MustCompile(`\b(?:private limited|pvt\.?\s*ltd\.?|pvt|limited|ltd\.?|llp|llc|inc\.?|corp\.?|corporation|technologies|tech|solutions|services|software|systems|enterprises|group|india|global|international|worldwide)\b`)
	companyJunkRe   = regexp.MustCompile(`[^a-z0-9\s&]`)
	titleJunkRe     = regexp.MustCompile(`[^a-z0-9]`)
	spacesRe        = regexp.MustCompile(`\s+`)
)

// fold strips diacritics so "Nestlé" and "Nestle" compare equal.
// transform.Chain is stateful, so a fresh chain is built per call.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// TitleText is the lowercased, trimmed title.
func TitleText(job *models.Job) string {
	return strings.ToLower(strings.TrimSpace(job.Title))
}

// FullText repeats the title titleWeight times ahead of description, location
// and stipend. Empty parts are skipped, so a posting with no text yields "".
func FullText(job *models.Job, titleWeight int) string {
	title := TitleText(job)
	parts := make([]string, 0, titleWeight+3)
	if title != "" {
		for i := 0; i < titleWeight; i++ {
			parts = append(parts, title)
		}
	}
	for _, p := range []string{job.Description, job.Location, job.Stipend} {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// NormalizeCompanyName reduces a company name to the form used for tier
// lookups: folded, lowercased, legal suffixes removed, punctuation other
// than '&' replaced by spaces, whitespace collapsed.
func NormalizeCompanyName(name string) string {
	s := strings.ToLower(fold(strings.TrimSpace(name)))
	if s == "" {
		return ""
	}
	s = companySuffixRe.ReplaceAllString(s, " ")
	s = companyJunkRe.ReplaceAllString(s, " ")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeTitle is the dedup key for a title: lowercase alphanumerics only.
func NormalizeTitle(title string) string {
	return titleJunkRe.ReplaceAllString(strings.ToLower(fold(title)), "")
}

// Clamp01 bounds v to [0,1]. NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round4 rounds half away from zero to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
