package dedup

import (
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scoring"
)

// ByTitle keeps the first posting for each normalized title. Postings whose
// title normalizes to nothing are dropped.
func ByTitle(jobs []models.Job) []models.Job {
	seen := make(map[string]bool, len(jobs))
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		key := scoring.NormalizeTitle(j.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, j)
	}
	return out
}
