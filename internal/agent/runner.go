package agent

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/dedup"
	"go-internship-agent/internal/filter"
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/reporter"
	"go-internship-agent/internal/scoring"
	"go-internship-agent/internal/scraper"

	"github.com/google/uuid"
)

// Notifier delivers the run digest. telegram.Bot implements it.
type Notifier interface {
	SendDigest(text string) error
	SendError(err error) error
}

// Sink persists the scored postings of a run (CSV, JSON log, Postgres).
type Sink interface {
	Name() string
	Write(ctx context.Context, run models.Run, jobs []models.Job) error
}

type Runner struct {
	Cfg      *config.Config
	Scoring  *scoring.Context
	Rules    *filter.Rules
	Scrapers []scraper.Scraper
	History  dedup.Store
	Notifier Notifier
	Sinks    []Sink
	Now      func() time.Time
}

type Summary struct {
	RunID     string         `json:"run_id"`
	Collected int            `json:"collected"`
	New       int            `json:"new"`
	Relevant  int            `json:"relevant"`
	Surfaced  int            `json:"surfaced"`
	Alerted   int            `json:"alerted"`
	Notified  bool           `json:"notified"`
	PerSource map[string]int `json:"per_source"`
	Jobs      []models.Job   `json:"-"`
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run executes one pass: collect, gate on history, filter, dedup by title,
// score, rank, persist, record history and notify.
//
// Every surfaced posting is marked sent and history is saved before the
// digest goes out. If the save fails nothing is sent, so a posting is
// notified at most once. Sink failures do not stop the run; they come back
// as a *PersistenceError after notification.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	now := r.now()
	sum := Summary{RunID: uuid.NewString()}
	log.Printf("🚀 Starting run %s", sum.RunID)

	history, err := r.History.Load(ctx)
	if err != nil {
		return sum, r.fail(fmt.Errorf("load history: %w", err))
	}

	collected, perSource := scraper.Collect(ctx, r.Scrapers)
	sum.Collected = len(collected)
	sum.PerSource = perSource
	log.Printf("📦 Total jobs collected: %d", len(collected))

	fresh := history.FilterNew(collected)
	sum.New = len(fresh)
	log.Printf("🔍 Deduplication: %d total -> %d unseen jobs", len(collected), len(fresh))

	relevant := r.Rules.Apply(fresh)
	sum.Relevant = len(relevant)
	log.Printf("🔍 Filtered: %d/%d jobs relevant", len(relevant), len(fresh))

	unique := dedup.ByTitle(relevant)
	if dropped := len(relevant) - len(unique); dropped > 0 {
		log.Printf("🔍 Dropped %d duplicate titles", dropped)
	}

	scored := r.Scoring.ScoreBatch(ctx, unique)
	scoring.Rank(scored)
	alerts := scoring.TopAlerts(scored, 0)
	sum.Surfaced = len(scored)
	sum.Alerted = len(alerts)
	sum.Jobs = scored

	run := models.Run{
		ID:        sum.RunID,
		StartedAt: now,
		Collected: sum.Collected,
		Surfaced:  sum.Surfaced,
		Alerted:   sum.Alerted,
		Status:    models.RunStatusCompleted,
	}
	persistErr := r.writeSinks(ctx, run, scored)

	links := make([]string, 0, len(scored))
	for _, j := range scored {
		links = append(links, j.URL)
	}
	history.MarkSent(links...)
	if err := r.History.Save(ctx, history); err != nil {
		return sum, r.fail(fmt.Errorf("save history, digest not sent: %w", err))
	}
	log.Printf("💾 Marked %d jobs as sent", len(links))

	if r.Notifier != nil {
		limit := reporter.DefaultLimit
		if r.Cfg != nil && r.Cfg.Notify.TopN > 0 {
			limit = r.Cfg.Notify.TopN
		}
		if err := r.Notifier.SendDigest(reporter.FormatDigest(alerts, now, limit)); err != nil {
			return sum, fmt.Errorf("send digest: %w", err)
		}
		sum.Notified = true
		log.Printf("📨 Digest sent with %d alert-eligible jobs", len(alerts))
	}

	if persistErr != nil {
		return sum, persistErr
	}
	log.Printf("✅ Run %s finished: %d surfaced, %d alerts", sum.RunID, sum.Surfaced, sum.Alerted)
	return sum, nil
}

// writeSinks tries every sink and collects the failures.
func (r *Runner) writeSinks(ctx context.Context, run models.Run, jobs []models.Job) error {
	var failures []*SinkError
	for _, s := range r.Sinks {
		if err := s.Write(ctx, run, jobs); err != nil {
			log.Printf("⚠️ Sink %s failed: %v", s.Name(), err)
			failures = append(failures, &SinkError{Sink: s.Name(), Cause: err})
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &PersistenceError{Failures: failures}
}

// fail reports a fatal run error to the notifier, best effort.
func (r *Runner) fail(err error) error {
	log.Printf("❌ Run failed: %v", err)
	if r.Notifier != nil {
		if nerr := r.Notifier.SendError(err); nerr != nil {
			log.Printf("⚠️ Could not send error notice: %v", nerr)
		}
	}
	return err
}
