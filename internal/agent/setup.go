package agent

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"go-internship-agent/internal/ai"
	"go-internship-agent/internal/browser"
	"go-internship-agent/internal/config"
	"go-internship-agent/internal/dedup"
	"go-internship-agent/internal/scoring"
	"go-internship-agent/internal/scraper"
	"go-internship-agent/internal/scraper/indeed"
	"go-internship-agent/internal/scraper/internshala"
	"go-internship-agent/internal/scraper/linkedin"
	"go-internship-agent/internal/scraper/naukri"

	"github.com/playwright-community/playwright-go"
)

// BuildScoring loads the profile and tier overlay named in cfg and wires
// the scorers. The embedder is only built for the embedding strategy.
func BuildScoring(cfg *config.Config) (*scoring.Context, error) {
	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}

	tiers := scoring.DefaultTierTable()
	tf, ok, err := config.LoadTierFile(cfg.TiersPath)
	if err != nil {
		return nil, err
	}
	if ok {
		tiers = tiers.WithOverlay(tf)
	}

	var embedder ai.Embedder
	if cfg.Scoring.SemanticStrategy == "embedding" {
		e := cfg.Embedding
		embedder = ai.NewOpenAIEmbedder(e.BaseURL, e.APIKey, e.Model, time.Duration(e.TimeoutSeconds)*time.Second)
		log.Printf("🧠 Using embedding model %s at %s", e.Model, e.BaseURL)
	}

	return scoring.NewContext(cfg, profile, tiers, embedder)
}

// BuildFetcher returns the page fetcher for cfg and a function releasing it.
func BuildFetcher(cfg *config.Config) (scraper.PageFetcher, func(), error) {
	f := cfg.Fetch
	limiter := scraper.NewHostLimiter(f.RequestsPerSecond, f.Burst)
	timeout := time.Duration(f.TimeoutSeconds) * time.Second

	if !f.UseBrowser {
		return scraper.NewHTTPFetcher(f.UserAgent, timeout, limiter), func() {}, nil
	}

	pm, err := browser.NewPlaywright(browser.Options{
		UserAgent: f.UserAgent,
		Timeout:   timeout,
		Headless:  true,
		Cookies:   loadCookies(cfg.CookiesPath),
		Limiter:   limiter,
		LogDir:    cfg.LogDir,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init Playwright: %w", err)
	}
	return pm, func() { pm.Close() }, nil
}

func loadCookies(dir string) []playwright.OptionalCookie {
	if dir == "" {
		return nil
	}
	var all []playwright.OptionalCookie
	for _, name := range []string{"linkedin", "naukri", "internshala"} {
		cookies, err := browser.LoadCookies(filepath.Join(dir, "cookies-"+name+".json"))
		if err != nil {
			log.Printf("⚠️ Could not load %s cookies: %v. Continuing.", name, err)
			continue
		}
		log.Printf("🍪 Loaded %s cookies (%d)", name, len(cookies))
		all = append(all, cookies...)
	}
	return all
}

// BuildScrapers returns the enabled sources in their fixed order.
func BuildScrapers(cfg *config.Config, f scraper.PageFetcher) []scraper.Scraper {
	src := cfg.Sources
	var out []scraper.Scraper
	if src.Internshala.On() {
		out = append(out, internshala.NewInternshalaScraper(f, src.Internshala))
	}
	if src.LinkedIn.On() {
		out = append(out, linkedin.NewLinkedInScraper(f, src.LinkedIn))
	}
	if src.Naukri.On() {
		out = append(out, naukri.NewNaukriScraper(f, src.Naukri))
	}
	if src.Indeed.On() {
		out = append(out, indeed.NewIndeedScraper(f, src.Indeed))
	}
	return out
}

// OpenHistory opens the configured history backend.
func OpenHistory(cfg *config.Config) (dedup.Store, io.Closer, error) {
	h := cfg.History
	switch h.Backend {
	case "sqlite":
		s, err := dedup.OpenSQLiteStore(h.Path, h.MaxSize)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return dedup.NewFileStore(h.Path, h.MaxSize), io.NopCloser(nil), nil
	}
}
