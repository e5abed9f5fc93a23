package naukri

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

type NaukriScraper struct {
	fetcher scraper.PageFetcher
	url     string
	limit   int
}

func NewNaukriScraper(f scraper.PageFetcher, src config.Source) *NaukriScraper {
	return &NaukriScraper{fetcher: f, url: src.URL, limit: scraper.Limit(src.Limit)}
}

func (s *NaukriScraper) Name() string {
	return "Naukri"
}

func (s *NaukriScraper) Scrape(ctx context.Context) ([]models.Job, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to load naukri listing: %w", err)
	}
	return Parse(body, s.limit)
}

// Parse extracts postings from a Naukri listing. Only absolute links are
// kept; relative ones point at ads and internal navigation.
func Parse(body []byte, limit int) ([]models.Job, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse naukri html: %w", err)
	}

	articles := doc.Find("article.jobTuple")
	if articles.Length() == 0 {
		articles = doc.Find("article")
	}

	jobs := []models.Job{}
	articles.EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if len(jobs) >= limit {
			return false
		}

		titleEl := a.Find("a.title").First()
		if titleEl.Length() == 0 {
			titleEl = a.Find("a").First()
		}
		title := scraper.CleanText(titleEl.Text())
		link, _ := titleEl.Attr("href")
		link = strings.TrimSpace(link)
		if title == "" || !strings.HasPrefix(link, "http") {
			return true
		}

		location := scraper.CleanText(a.Find(".location, .locWdth").First().Text())
		jobs = append(jobs, models.Job{
			Title:       title,
			Company:     scraper.CleanText(a.Find("a.subTitle, .comp-name").First().Text()),
			URL:         link,
			Location:    location,
			Description: location,
			Source:      "Naukri",
			PostedDate:  scraper.CleanText(a.Find(".job-post-day, .type.br2").First().Text()),
		})
		return true
	})
	return jobs, nil
}
