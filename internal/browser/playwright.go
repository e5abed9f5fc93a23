package browser

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"go-internship-agent/internal/scraper"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	UserAgent string
	Timeout   time.Duration
	Headless  bool
	Cookies   []playwright.OptionalCookie
	Limiter   *scraper.HostLimiter
	LogDir    string
}

// PlaywrightManager owns one Chromium instance and one browser context
// shared by every source. It implements scraper.PageFetcher.
type PlaywrightManager struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	ctx      playwright.BrowserContext
	opts     Options
	shots    *ScreenshotDebugger
	pageLock sync.Mutex
}

func NewPlaywright(opts Options) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     []string{"--disable-blink-features=AutomationControlled"},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}

	pm := &PlaywrightManager{pw: pw, browser: browser, opts: opts, shots: NewScreenshotDebugger(opts.LogDir)}

	bctx, err := pm.NewContext(opts.Cookies)
	if err != nil {
		pm.Close()
		return nil, err
	}
	pm.ctx = bctx
	log.Println("✅ Browser initialized successfully!")
	return pm, nil
}

func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	bctx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(pm.opts.UserAgent),
		Locale:    playwright.String("en-IN"),
		Viewport:  &playwright.Size{Width: 1366, Height: 768},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if err := bctx.AddInitScript(playwright.Script{Content: playwright.String(stealthScript)}); err != nil {
		bctx.Close()
		return nil, fmt.Errorf("could not add stealth script: %w", err)
	}

	if len(cookies) > 0 {
		if err := bctx.AddCookies(cookies); err != nil {
			bctx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
		log.Printf("🍪 Added %d cookies to browser context", len(cookies))
	}
	return bctx, nil
}

// Fetch opens url in a fresh page, scrolls it and returns the rendered HTML.
// Pages are fetched one at a time.
func (pm *PlaywrightManager) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if pm.opts.Limiter != nil {
		if err := pm.opts.Limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	pm.pageLock.Lock()
	defer pm.pageLock.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := pm.ctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	resp, err := page.Goto(rawURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(pm.opts.Timeout.Milliseconds())),
	})
	if err != nil {
		pm.shots.CaptureAndLog(page, hostOf(rawURL), fmt.Sprintf("Navigation to %s failed", rawURL))
		return nil, fmt.Errorf("goto %s: %w", rawURL, err)
	}
	if resp != nil && resp.Status() >= 400 {
		pm.shots.CaptureAndLog(page, hostOf(rawURL), fmt.Sprintf("%s returned status %d", rawURL, resp.Status()))
		return nil, fmt.Errorf("goto %s: status %d", rawURL, resp.Status())
	}

	if err := HumanScroll(page); err != nil {
		log.Printf("⚠️ Scroll failed on %s: %v", rawURL, err)
	}

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", rawURL, err)
	}
	return []byte(html), nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.ctx != nil {
		pm.ctx.Close()
	}
	if pm.browser != nil {
		pm.browser.Close()
	}
	if pm.pw != nil {
		return pm.pw.Stop()
	}
	return nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "page"
	}
	return u.Host
}
