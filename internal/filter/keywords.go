package filter

import (
	"regexp"
	"time"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
)

var unpaidRegex = regexp.MustCompile(`(?i)\bunpaid\b`)

// Rules decides which postings are relevant and annotates the ones that are.
type Rules struct {
	roleInclude termMatcher
	roleExclude termMatcher
	internship  termMatcher
	locations   termMatcher
	stipend     termMatcher
	maxAge      time.Duration
	now         func() time.Time
}

func NewRules(cfg *config.Config) *Rules {
	f := cfg.Filter
	return &Rules{
		roleInclude: newTermMatcher(f.RoleKeywords),
		roleExclude: newTermMatcher(f.RoleExclude),
		internship:  newTermMatcher(f.InternshipKeywords),
		locations:   newTermMatcher(f.Locations),
		stipend:     newTermMatcher(f.StipendKeywords),
		maxAge:      time.Duration(f.MaxAgeDays) * 24 * time.Hour,
		now:         time.Now,
	}
}

// IsRole: title names a target role and none of the excluded ones.
func (r *Rules) IsRole(title string) bool {
	return r.roleInclude.Match(title) && !r.roleExclude.Match(title)
}

func (r *Rules) IsInternship(job *models.Job) bool {
	return r.internship.Match(job.Title + " " + job.Description)
}

func (r *Rules) LocationMatch(job *models.Job) bool {
	return r.locations.Match(job.Title + " " + job.Description + " " + job.Location)
}

// HasStipend: a stipend keyword is present and the posting is not unpaid.
func (r *Rules) HasStipend(job *models.Job) bool {
	text := job.Description + " " + job.Stipend
	if unpaidRegex.MatchString(text) {
		return false
	}
	return r.stipend.Match(text)
}

// Enhance sets the informational flags used by the digest and exports.
func (r *Rules) Enhance(job *models.Job) {
	job.IsInternship = r.IsInternship(job)
	job.LocationMatch = r.LocationMatch(job)
	job.HasStipend = r.HasStipend(job)
}

func (r *Rules) ShouldIncludeJob(job *models.Job) bool {
	//must be a target role
	if !r.IsRole(job.Title) {
		return false
	}

	//must be internship or entry level
	if !r.IsInternship(job) {
		return false
	}

	//must be recent
	if r.maxAge > 0 && !IsRecentJob(job.PostedDate, r.maxAge, r.now()) {
		return false
	}
	return true
}

// Apply keeps relevant postings, enhanced, in input order.
func (r *Rules) Apply(jobs []models.Job) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if !r.ShouldIncludeJob(&j) {
			continue
		}
		r.Enhance(&j)
		out = append(out, j)
	}
	return out
}
