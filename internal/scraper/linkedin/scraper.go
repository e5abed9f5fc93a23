package linkedin

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const baseURL = "https://www.linkedin.com"

// LinkedInScraper reads the public (logged-out) job search page.
type LinkedInScraper struct {
	fetcher scraper.PageFetcher
	url     string
	limit   int
}

func NewLinkedInScraper(f scraper.PageFetcher, src config.Source) *LinkedInScraper {
	return &LinkedInScraper{fetcher: f, url: src.URL, limit: scraper.Limit(src.Limit)}
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}

func (s *LinkedInScraper) Scrape(ctx context.Context) ([]models.Job, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to load linkedin search: %w", err)
	}
	return Parse(body, s.limit)
}

// Parse extracts job cards from a LinkedIn search page.
func Parse(body []byte, limit int) ([]models.Job, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse linkedin html: %w", err)
	}

	jobs := []models.Job{}
	doc.Find("div.base-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(jobs) >= limit {
			return false
		}

		title := scraper.CleanText(card.Find("h3").First().Text())
		href, _ := card.Find("a.base-card__full-link").First().Attr("href")
		if title == "" || href == "" {
			return true
		}

		// Normalizing URL by removing query parameters
		// LinkedIn URLs carry tracking params (?refId=..., ?trackingId=...)
		// which make the same job appear as different URLs.
		link := scraper.StripQuery(scraper.AbsoluteURL(baseURL, href))

		location := scraper.CleanText(card.Find(".job-search-card__location").First().Text())
		if location == "" {
			location = scraper.CleanText(card.Find(".job-card-container__metadata-item").First().Text())
		}

		posted, _ := card.Find("time").First().Attr("datetime")

		jobs = append(jobs, models.Job{
			Title:       title,
			Company:     scraper.CleanText(card.Find("h4.base-search-card__subtitle").First().Text()),
			URL:         link,
			Location:    location,
			Description: location,
			Source:      "LinkedIn",
			PostedDate:  posted,
			EasyApply:   isEasyApply(card),
		})
		return true
	})
	return jobs, nil
}

func isEasyApply(card *goquery.Selection) bool {
	if card.Find(".job-card-container__apply-method").Length() > 0 {
		return true
	}
	text := card.Text()
	return strings.Contains(text, "easyApply") || strings.Contains(strings.ToLower(text), "easy apply")
}
