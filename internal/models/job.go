package models

import (
	"encoding/json"
	"strings"
)

// SkillMatch explains how a posting's detected skills overlap the candidate's.
type SkillMatch struct {
	Required  []string `json:"required"`
	Matched   []string `json:"matched"`
	Missing   []string `json:"missing"`
	MatchRate float64  `json:"match_rate"`
}

// Job is one scraped listing. Scoring fields are filled in by the scoring pipeline.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	URL         string `json:"link"`
	Location    string `json:"location"`
	Stipend     string `json:"stipend"`
	Description string `json:"description"`
	Source      string `json:"source"`
	PostedDate  string `json:"posted_date,omitempty"`
	EasyApply   bool   `json:"easy_apply"`

	//set by filter.Enhance
	IsInternship  bool `json:"is_internship"`
	LocationMatch bool `json:"location_match"`
	HasStipend    bool `json:"has_stipend"`

	KeywordScore  float64    `json:"keyword_score"`
	SemanticScore float64    `json:"ai_score"`
	SkillMatch    SkillMatch `json:"skill_match"`
	HybridScore   float64    `json:"hybrid_score"`
	CompanyTier   int        `json:"company_tier"`
	CompanyScore  float64    `json:"company_score"`
	FinalRank     float64    `json:"final_rank"`
	ShouldAlert   bool       `json:"should_alert"`
}

// MarshalJSON writes the semantic score under both semantic_score and its
// historical name ai_score, so older dataset readers keep working.
func (j Job) MarshalJSON() ([]byte, error) {
	type plain Job
	return json.Marshal(struct {
		plain
		SemanticScoreAlias float64 `json:"semantic_score"`
	}{plain(j), j.SemanticScore})
}

// RawJob is a posting as it arrives from an untyped source (JSON file, HTTP body).
type RawJob map[string]any

// FromRaw converts a loosely typed record into a Job. Missing, null or
// wrongly typed keys become "" / false.
func FromRaw(raw RawJob) Job {
	return Job{
		Title:       rawString(raw, "title"),
		Company:     rawString(raw, "company"),
		URL:         rawString(raw, "link"),
		Location:    rawString(raw, "location"),
		Stipend:     rawString(raw, "stipend"),
		Description: rawString(raw, "description"),
		Source:      rawString(raw, "source"),
		PostedDate:  rawString(raw, "posted_date"),
		EasyApply:   rawBool(raw, "easy_apply"),
	}
}

func rawString(raw RawJob, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func rawBool(raw RawJob, key string) bool {
	switch v := raw[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "yes" || s == "1"
	default:
		return false
	}
}
