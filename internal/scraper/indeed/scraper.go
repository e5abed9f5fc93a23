package indeed

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

type rss struct {
	Channel struct {
		Items []item `xml:"item"`
	} `xml:"channel"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	Source      string `xml:"source"`
}

// IndeedScraper reads Indeed's RSS search feed.
type IndeedScraper struct {
	fetcher scraper.PageFetcher
	url     string
	limit   int
}

func NewIndeedScraper(f scraper.PageFetcher, src config.Source) *IndeedScraper {
	return &IndeedScraper{fetcher: f, url: src.URL, limit: scraper.Limit(src.Limit)}
}

func (s *IndeedScraper) Name() string {
	return "Indeed"
}

func (s *IndeedScraper) Scrape(ctx context.Context) ([]models.Job, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to load indeed feed: %w", err)
	}
	return Parse(body, s.limit)
}

// Parse reads an RSS document. Items without a title or link are skipped.
func Parse(body []byte, limit int) ([]models.Job, error) {
	var feed rss
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse indeed rss: %w", err)
	}

	jobs := []models.Job{}
	for _, it := range feed.Channel.Items {
		if len(jobs) >= limit {
			break
		}
		title := scraper.CleanText(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}

		jobs = append(jobs, models.Job{
			Title:       title,
			Company:     scraper.CleanText(it.Source),
			URL:         link,
			Description: htmlText(it.Description),
			Source:      "Indeed",
			PostedDate:  strings.TrimSpace(it.PubDate),
		})
	}
	return jobs, nil
}

// htmlText flattens the HTML snippet Indeed puts in <description>.
func htmlText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return scraper.CleanText(s)
	}
	return scraper.CleanText(doc.Text())
}
