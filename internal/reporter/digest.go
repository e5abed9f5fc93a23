package reporter

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"go-internship-agent/internal/models"
)

const (
	// MaxMessageLen keeps messages under Telegram's 4096 character limit.
	MaxMessageLen = 4000
	DefaultLimit  = 15

	dateLayout = "02 Jan 2006, 03:04 PM"
)

var divider = strings.Repeat("─", 40)

// FormatDigest renders the ranked, alert-eligible postings as a Telegram
// HTML message. At most limit postings are listed; the rest are counted.
func FormatDigest(jobs []models.Job, now time.Time, limit int) string {
	if len(jobs) == 0 {
		return FormatEmpty(now)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var header strings.Builder
	fmt.Fprintf(&header, "🔥 <b>%d New Data Analyst Opportunities</b>\n", len(jobs))
	fmt.Fprintf(&header, "📅 %s\n", now.Format(dateLayout))
	header.WriteString(divider + "\n\n")

	footer := "\n" + divider + "\n" +
		"💡 <b>Legend:</b>\n" +
		"⭐ Easy Apply • 💰 Stipend Mentioned • 📍 Preferred Location • 🏆 Company Tier"

	//leave room for the "...and N more" line
	budget := MaxMessageLen - utf8.RuneCountInString(header.String()) - utf8.RuneCountInString(footer) - 64

	var body strings.Builder
	shown := 0
	for i, job := range jobs {
		if i >= limit {
			break
		}
		item := formatItem(i+1, job)
		if utf8.RuneCountInString(body.String())+utf8.RuneCountInString(item) > budget {
			break
		}
		body.WriteString(item)
		shown++
	}

	msg := header.String() + body.String()
	if rest := len(jobs) - shown; rest > 0 {
		msg += fmt.Sprintf("<i>...and %d more opportunities!</i>\n\n", rest)
	}
	return Truncate(msg+footer, MaxMessageLen)
}

func formatItem(n int, job models.Job) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. ", n)
	if job.EasyApply {
		b.WriteString("⭐ ")
	}
	if job.HasStipend {
		b.WriteString("💰 ")
	}
	if job.LocationMatch {
		b.WriteString("📍 ")
	}
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(job.Title))

	who := job.Company
	if who == "" {
		who = job.Source
	} else if job.Source != "" {
		who += " (" + job.Source + ")"
	}
	fmt.Fprintf(&b, "   🏢 %s", html.EscapeString(who))
	if job.Location != "" {
		fmt.Fprintf(&b, " • %s", html.EscapeString(job.Location))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "   🏆 Tier %d • rank %.2f\n", job.CompanyTier, job.FinalRank)
	fmt.Fprintf(&b, "   🔗 %s\n\n", html.EscapeString(job.URL))
	return b.String()
}

// FormatEmpty is sent when a run surfaced nothing alert-worthy.
func FormatEmpty(now time.Time) string {
	return "⚠️ <b>No New Jobs Today</b>\n\n" +
		"All recent Data Analyst internship postings were already sent to you!\n\n" +
		"✅ Agent ran successfully.\n" +
		"🕐 " + now.Format(dateLayout)
}

// FormatError reports a failed run. The error text is cut to 200 characters.
func FormatError(err error, now time.Time) string {
	return "⚠️ <b>Job Agent Error</b>\n\n" +
		"The agent encountered an error:\n" +
		"<code>" + html.EscapeString(Truncate(err.Error(), 200)) + "</code>\n\n" +
		"🕐 " + now.Format(dateLayout)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
