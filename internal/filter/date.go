package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearOnlyRegex = regexp.MustCompile(`\b(20\d{2})\b`)
	agoRegex      = regexp.MustCompile(`(?i)(\d+)\+?\s*(hour|day|week|month)s?\s+ago`)
	rssLayouts    = []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700", "Mon, 2 Jan 2006 15:04:05 MST"}
)

// IsRecentJob reports whether a posting dated dateStr is at most maxAge old
// at now. Unknown or unparseable dates count as recent.
func IsRecentJob(dateStr string, maxAge time.Duration, now time.Time) bool {
	dateStr = strings.TrimSpace(dateStr)
	lower := strings.ToLower(dateStr)
	if dateStr == "" || dateStr == "N/A" || lower == "recent" || lower == "today" || lower == "just now" {
		return true
	}

	//case 1: ISO format "2026-01-27" or 2026-01-27T...
	if isoDateRegex.MatchString(dateStr) {
		jobDate, err := time.Parse("2006-01-02", dateStr[:10])
		if err == nil {
			return isWithin(now, jobDate, maxAge)
		}
	}

	//case 2: RSS pubDate
	for _, layout := range rssLayouts {
		if jobDate, err := time.Parse(layout, dateStr); err == nil {
			return isWithin(now, jobDate, maxAge)
		}
	}

	//case 3: "3 days ago", "2 weeks ago", "30+ days ago"
	if m := agoRegex.FindStringSubmatch(dateStr); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit := 24 * time.Hour
		switch strings.ToLower(m[2]) {
		case "hour":
			unit = time.Hour
		case "week":
			unit = 7 * 24 * time.Hour
		case "month":
			unit = 30 * 24 * time.Hour
		}
		return time.Duration(n)*unit <= maxAge
	}

	//case 4: dd/mm/yyyy
	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) >= 3 {
			day, _ := strconv.Atoi(parts[0])
			month, _ := strconv.Atoi(parts[1])
			year, _ := strconv.Atoi(strings.TrimSpace(parts[2]))

			jobDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return isWithin(now, jobDate, maxAge)
		}
	}

	//case 5: year only fallback
	if match := yearOnlyRegex.FindStringSubmatch(dateStr); match != nil {
		year, _ := strconv.Atoi(match[1])
		return year == now.Year() || year == now.Year()-1
	}

	//default
	return true
}

func isWithin(now, jobDate time.Time, maxAge time.Duration) bool {
	diff := now.Sub(jobDate)
	//reject if older than maxAge
	if diff > maxAge {
		return false
	}

	//reject if future date >2 days (timezone issues)
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}
