package filter

import (
	"testing"
	"time"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"

	"github.com/stretchr/testify/assert"
)

func testRules() *Rules {
	r := NewRules(config.Default())
	r.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestIsRole(t *testing.T) {
	r := testRules()

	tests := []struct {
		title string
		want  bool
	}{
		{"Data Analyst Intern", true},
		{"Business Intelligence Trainee", true},
		{"Senior Data Analyst", false},
		{"Data Analyst Engineer", false},
		{"Sr. Business Analyst", false},
		{"Marketing Data Analyst", false},
		{"Software Developer Intern", false},
		{"Chrome Data Analyst", true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsRole(tt.title))
		})
	}
}

func TestShouldIncludeJob(t *testing.T) {
	r := testRules()

	tests := []struct {
		name string
		job  models.Job
		want bool
	}{
		{
			name: "intern in title",
			job:  models.Job{Title: "Data Analyst Intern"},
			want: true,
		},
		{
			name: "entry level in description",
			job:  models.Job{Title: "Data Analyst", Description: "Entry-level role for graduates"},
			want: true,
		},
		{
			name: "not entry level",
			job:  models.Job{Title: "Data Analyst", Description: "3 years experience"},
			want: false,
		},
		{
			name: "too old",
			job:  models.Job{Title: "Data Analyst Intern", PostedDate: "2025-10-01"},
			want: false,
		},
		{
			name: "relative date",
			job:  models.Job{Title: "Data Analyst Intern", PostedDate: "2 weeks ago"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ShouldIncludeJob(&tt.job))
		})
	}
}

func TestEnhance(t *testing.T) {
	r := testRules()

	job := models.Job{
		Title:       "Data Analyst Intern",
		Description: "Work from home. Stipend provided.",
		Stipend:     "₹ 10,000 /month",
	}
	r.Enhance(&job)
	assert.True(t, job.IsInternship)
	assert.True(t, job.LocationMatch)
	assert.True(t, job.HasStipend)

	unpaid := models.Job{Title: "Data Analyst Intern", Description: "Unpaid internship, stipend not offered", Location: "Berlin"}
	r.Enhance(&unpaid)
	assert.False(t, unpaid.HasStipend)
	assert.False(t, unpaid.LocationMatch)

	rsvp := models.Job{Description: "Please RSVP"}
	assert.False(t, r.HasStipend(&rsvp))
	rs := models.Job{Stipend: "Rs 8000"}
	assert.True(t, r.HasStipend(&rs))
}

func TestApply(t *testing.T) {
	r := testRules()
	jobs := []models.Job{
		{Title: "Data Analyst Intern", URL: "1", Location: "Pune"},
		{Title: "Senior Data Analyst", URL: "2"},
		{Title: "Business Analyst Trainee", URL: "3"},
	}

	out := r.Apply(jobs)
	assert.Len(t, out, 2)
	assert.Equal(t, "1", out[0].URL)
	assert.True(t, out[0].LocationMatch)
	assert.Equal(t, "3", out[1].URL)
	assert.Empty(t, r.Apply(nil))
}
