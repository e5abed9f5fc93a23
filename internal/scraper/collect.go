package scraper

import (
	"context"
	"log"

	"go-internship-agent/internal/models"

	"golang.org/x/sync/errgroup"
)

// Collect runs every scraper concurrently. A failing source is logged and
// contributes nothing. Results are concatenated in scraper order, so the
// collection order is stable regardless of which source finishes first.
func Collect(ctx context.Context, scrapers []Scraper) ([]models.Job, map[string]int) {
	var g errgroup.Group
	results := make([][]models.Job, len(scrapers))

	for i, s := range scrapers {
		i, s := i, s
		g.Go(func() error {
			log.Printf("🔍 Fetching %s...", s.Name())
			jobs, err := s.Scrape(ctx)
			if err != nil {
				log.Printf("❌ %s failed: %v", s.Name(), err)
				return nil
			}
			log.Printf("✅ %s: %d jobs found", s.Name(), len(jobs))
			results[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	counts := make(map[string]int, len(scrapers))
	var all []models.Job
	for i, s := range scrapers {
		counts[s.Name()] += len(results[i])
		all = append(all, results[i]...)
	}
	return all, counts
}
