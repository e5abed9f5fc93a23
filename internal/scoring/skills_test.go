package scoring

import (
	"testing"

	"go-internship-agent/internal/models"

	"github.com/stretchr/testify/assert"
)

func defaultSkills() *SkillMatcher {
	p := models.DefaultProfile()
	return NewSkillMatcher(p.SkillVocabulary, p.CandidateSkills)
}

func TestSkillMatcher_Match(t *testing.T) {
	m := defaultSkills()

	tests := []struct {
		name        string
		text        string
		wantScore   float64
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "all skills held",
			text:        "Data Analyst Intern (Excel, SQL, Power BI)",
			wantScore:   1.0,
			wantMatched: []string{"sql", "excel", "power bi"},
			wantMissing: []string{},
		},
		{
			name:        "partial",
			text:        "Need Python, R programming and Machine Learning",
			wantScore:   0.3333,
			wantMatched: []string{"python"},
			wantMissing: []string{"r programming", "machine learning"},
		},
		{
			name:        "whole words only",
			text:        "MySQL administrator",
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{"mysql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, meta := m.Match(tt.text)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantMatched, meta.Matched)
			assert.Equal(t, tt.wantMissing, meta.Missing)
			assert.Equal(t, score, meta.MatchRate)
		})
	}
}

func TestSkillMatcher_NoSkillsIsNeutral(t *testing.T) {
	score, meta := defaultSkills().Match("Marketing intern for social media")

	assert.Equal(t, NeutralSkillScore, score)
	assert.Equal(t, 0.5, meta.MatchRate)
	assert.Empty(t, meta.Required)
	assert.NotNil(t, meta.Required)
}
