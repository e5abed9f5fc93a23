// Define an interface for all scrapers
// Ensure consistency

package scraper

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"go-internship-agent/internal/models"
)

// MaxPerSource caps how many postings a single source returns per run.
const MaxPerSource = 15

// Scraper defines the interface that all job sources must implement
type Scraper interface {
	//Scrape postings from the source. An empty page is not an error.
	Scrape(ctx context.Context) ([]models.Job, error)

	//Name is the source name (Internshala, LinkedIn, ...)
	Name() string
}

// PageFetcher downloads a page body. Implemented over plain HTTP here and
// over a headless browser in internal/browser.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Limit returns the effective per-source cap for a configured limit.
func Limit(configured int) int {
	if configured <= 0 || configured > MaxPerSource {
		return MaxPerSource
	}
	return configured
}

var spaceRegex = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace and trims.
func CleanText(s string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}

// AbsoluteURL resolves href against base. Unparseable input is returned as is.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

// StripQuery drops tracking parameters so the same posting always has the
// same link.
func StripQuery(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i]
	}
	return link
}
