package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ScreenshotDebugger saves full-page screenshots when a fetch fails.
type ScreenshotDebugger struct {
	outputDir string
}

func NewScreenshotDebugger(logDir string) *ScreenshotDebugger {
	return &ScreenshotDebugger{outputDir: filepath.Join(logDir, "screenshots")}
}

// Filename builds the screenshot name for a capture taken at t.
func (s *ScreenshotDebugger) Filename(name string, t time.Time) string {
	safe := unsafeName.ReplaceAllString(name, "_")
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", safe, t.Format("2006-01-02_15-04-05")))
}

func (s *ScreenshotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return err
	}
	path := s.Filename(name, time.Now())
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}
