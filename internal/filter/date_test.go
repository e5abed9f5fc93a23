package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRecentJob(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 60 * 24 * time.Hour

	tests := []struct {
		date string
		want bool
	}{
		{"", true},
		{"N/A", true},
		{"Today", true},
		{"2026-02-20", true},
		{"2026-02-20T10:00:00Z", true},
		{"2025-12-01", false},
		{"2026-03-10", false},
		{"Fri, 27 Feb 2026 08:00:00 GMT", true},
		{"Mon, 01 Dec 2025 08:00:00 +0000", false},
		{"3 days ago", true},
		{"30+ days ago", true},
		{"3 months ago", false},
		{"15/02/2026", true},
		{"15/11/2025", false},
		{"Posted in 2025", true},
		{"Posted in 2023", false},
		{"whenever", true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecentJob(tt.date, maxAge, now))
		})
	}
}
