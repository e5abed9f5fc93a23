package reporter

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go-internship-agent/internal/models"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func TestFormatDigest(t *testing.T) {
	jobs := []models.Job{
		{
			Title: "Data Analyst Intern <SQL>", Company: "Deloitte", Source: "LinkedIn",
			Location: "Pune", URL: "https://x/1", EasyApply: true, HasStipend: true, LocationMatch: true,
			CompanyTier: 1, FinalRank: 0.93,
		},
		{Title: "BI Trainee", Source: "Naukri", URL: "https://x/2", CompanyTier: 2, FinalRank: 0.7},
	}

	msg := FormatDigest(jobs, now, 15)

	assert.True(t, strings.HasPrefix(msg, "🔥 <b>2 New Data Analyst Opportunities</b>\n"))
	assert.Contains(t, msg, "📅 01 Mar 2026, 09:30 AM")
	assert.Contains(t, msg, "1. ⭐ 💰 📍 <b>Data Analyst Intern &lt;SQL&gt;</b>")
	assert.Contains(t, msg, "   🏢 Deloitte (LinkedIn) • Pune")
	assert.Contains(t, msg, "   🏆 Tier 1 • rank 0.93")
	assert.Contains(t, msg, "2. <b>BI Trainee</b>\n   🏢 Naukri\n")
	assert.Contains(t, msg, "💡 <b>Legend:</b>")
	assert.NotContains(t, msg, "more opportunities")
}

func TestFormatDigest_LimitAndMore(t *testing.T) {
	var jobs []models.Job
	for i := 0; i < 20; i++ {
		jobs = append(jobs, models.Job{Title: fmt.Sprintf("Job %d", i), Source: "Indeed", URL: "https://x"})
	}

	msg := FormatDigest(jobs, now, 15)
	assert.Contains(t, msg, "15. <b>Job 14</b>")
	assert.NotContains(t, msg, "16. ")
	assert.Contains(t, msg, "<i>...and 5 more opportunities!</i>")
}

func TestFormatDigest_NeverExceedsCap(t *testing.T) {
	var jobs []models.Job
	for i := 0; i < 15; i++ {
		jobs = append(jobs, models.Job{Title: strings.Repeat("long title ", 40), Source: "Indeed", URL: "https://x"})
	}

	msg := FormatDigest(jobs, now, 15)
	assert.LessOrEqual(t, utf8.RuneCountInString(msg), MaxMessageLen)
	assert.Contains(t, msg, "more opportunities!")
	assert.Contains(t, msg, "Legend")
}

func TestFormatDigest_Empty(t *testing.T) {
	msg := FormatDigest(nil, now, 15)
	assert.Contains(t, msg, "No New Jobs Today")
	assert.Contains(t, msg, "01 Mar 2026")
}

func TestFormatError(t *testing.T) {
	msg := FormatError(errors.New("db <down>"), now)
	assert.Contains(t, msg, "<code>db &lt;down&gt;</code>")

	long := FormatError(errors.New(strings.Repeat("x", 500)), now)
	assert.Contains(t, long, "<code>"+strings.Repeat("x", 200)+"</code>")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "hi", Truncate("hi", 4))
}
