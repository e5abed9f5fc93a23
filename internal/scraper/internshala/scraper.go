package internshala

import (
	"bytes"
	"context"
	"fmt"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const baseURL = "https://internshala.com"

type InternshalaScraper struct {
	fetcher scraper.PageFetcher
	url     string
	limit   int
}

func NewInternshalaScraper(f scraper.PageFetcher, src config.Source) *InternshalaScraper {
	return &InternshalaScraper{fetcher: f, url: src.URL, limit: scraper.Limit(src.Limit)}
}

func (s *InternshalaScraper) Name() string {
	return "Internshala"
}

func (s *InternshalaScraper) Scrape(ctx context.Context) ([]models.Job, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to load internshala listing: %w", err)
	}
	return Parse(body, s.limit)
}

// Parse extracts postings from an Internshala listing page.
func Parse(body []byte, limit int) ([]models.Job, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse internshala html: %w", err)
	}

	//the listing markup has changed a few times, try the known containers in order
	containers := doc.Find(".individual_internship")
	if containers.Length() == 0 {
		containers = doc.Find(".internship_meta")
	}
	if containers.Length() == 0 {
		containers = doc.Find("div[class*='internship']")
	}

	jobs := []models.Job{}
	containers.EachWithBreak(func(_ int, c *goquery.Selection) bool {
		if len(jobs) >= limit {
			return false
		}

		title := firstText(c, ".job-internship-name", ".profile h3", "h3", "a")
		if title == "" {
			return true
		}

		link := c.Find("a[href*='/internship/detail/']").First()
		if link.Length() == 0 {
			link = c.Find("a[href]").First()
		}
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}

		location := firstText(c, ".location_link", ".locations")
		stipend := firstText(c, ".stipend")

		jobs = append(jobs, models.Job{
			Title:       title,
			Company:     firstText(c, ".company_name", ".company-name", ".company_and_premium"),
			URL:         scraper.AbsoluteURL(baseURL, href),
			Location:    location,
			Stipend:     stipend,
			Description: scraper.CleanText(location + " " + stipend),
			Source:      "Internshala",
			PostedDate:  firstText(c, ".status-success", ".status-info", ".status-inactive"),
		})
		return true
	})
	return jobs, nil
}

func firstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := scraper.CleanText(s.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}
