package scoring

import (
	"sort"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
)

// AlertThreshold is the minimum company score for a notification.
const AlertThreshold = 0.85

// FinalRank blends hybrid and company scores. A missing (non-positive)
// company score counts as tier 3.
func FinalRank(hybrid, companyScore float64, w config.RankWeights) float64 {
	if !(companyScore > 0) {
		companyScore = Tier3Score
	}
	return Round4(Clamp01(w.Hybrid*Clamp01(hybrid) + w.Company*Clamp01(companyScore)))
}

// ShouldAlert is true only for tier 1 and tier 2 companies.
func ShouldAlert(job *models.Job) bool {
	return job.CompanyScore >= AlertThreshold
}

// Rank sorts jobs by FinalRank descending. Ties keep their input order.
func Rank(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].FinalRank > jobs[j].FinalRank
	})
}

// TopAlerts returns up to n alert-eligible jobs in their current order.
// n <= 0 means no limit.
func TopAlerts(jobs []models.Job, n int) []models.Job {
	out := []models.Job{}
	for _, j := range jobs {
		if !j.ShouldAlert {
			continue
		}
		out = append(out, j)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}
