package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// stealthScript hides the most common automation fingerprints before any
// page script runs.
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'languages', { get: () => ['en-IN', 'en'] });
Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
window.chrome = window.chrome || { runtime: {} };
`

// RandomDelay waits for a random duration between min and max milliseconds
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := rand.Intn(max-min+1) + min
	time.Sleep(time.Duration(duration) * time.Millisecond)
}

// HumanScroll scrolls in a few uneven steps so lazy-loaded cards render.
func HumanScroll(page playwright.Page) error {
	for i := 0; i < 3; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)"); err != nil {
			return err
		}
		RandomDelay(300, 900)
	}
	// Scroll back up a bit (human-like correction)
	if _, err := page.Evaluate("window.scrollBy(0, -200)"); err != nil {
		return err
	}
	//bottom, to trigger lazy loading
	_, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}

// MouseJiggle simulates random mouse movements to prevent idle detection
func MouseJiggle(page playwright.Page) error {
	width, height := 800, 600
	if vp := page.ViewportSize(); vp != nil {
		width, height = vp.Width, vp.Height
	}
	for i := 0; i < 3; i++ {
		x := rand.Intn(width)
		y := rand.Intn(height)
		if err := page.Mouse().Move(float64(x), float64(y)); err != nil {
			return err
		}
		RandomDelay(100, 300)
	}
	return nil
}
