package models

import (
	"time"
)

type RunStatus string

const (
	RunStatusCompleted RunStatus = "COMPLETED"
	RunStatusFailed    RunStatus = "FAILED"
)

// Run is one pipeline execution as stored in Postgres.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Collected int       `json:"collected"`
	Surfaced  int       `json:"surfaced"`
	Alerted   int       `json:"alerted"`
	Status    RunStatus `json:"status"`
}

// StoredJob is a scored posting row keyed by URL.
type StoredJob struct {
	ID           string    `json:"id"`
	RunID        string    `json:"run_id"`
	Source       string    `json:"source"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	URL          string    `json:"url"`
	KeywordScore float64   `json:"keyword_score"`
	AIScore      float64   `json:"ai_score"`
	HybridScore  float64   `json:"hybrid_score"`
	CompanyTier  int       `json:"company_tier"`
	CompanyScore float64   `json:"company_score"`
	FinalRank    float64   `json:"final_rank"`
	CreatedAt    time.Time `json:"created_at"`
}
