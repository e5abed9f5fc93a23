package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"go-internship-agent/internal/models"
)

// Header is the column layout for new dataset files. The first seven
// columns match datasets written before scoring existed.
var Header = []string{
	"date", "title", "source", "link", "location", "stipend_mentioned", "easy_apply",
	"ai_score", "keyword_score", "hybrid_score", "keyword_pass", "final_decision",
	"company", "company_tier", "company_score", "final_rank",
}

const (
	DecisionAlert      = "alert"
	DecisionSuppressed = "suppressed"
)

// CSVWriter appends scored postings to a CSV dataset. When the file already
// exists its header decides the column order.
type CSVWriter struct {
	path          string
	passThreshold float64
}

func NewCSVWriter(path string, keywordPassThreshold float64) *CSVWriter {
	return &CSVWriter{path: path, passThreshold: keywordPassThreshold}
}

func (w *CSVWriter) Name() string { return "csv" }

func (w *CSVWriter) Write(_ context.Context, run models.Run, jobs []models.Job) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create csv dir: %w", err)
		}
	}

	header, err := readHeader(w.path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if header == nil {
		header = Header
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		log.Printf("📊 Created CSV dataset: %s", w.path)
	} else if missing := missingColumns(header); len(missing) > 0 {
		log.Printf("⚠️ CSV %s has an older header without columns %v; those values are not written. Start a new file to record them.", w.path, missing)
	}

	date := run.StartedAt.Format("2006-01-02")
	for _, job := range jobs {
		values := w.row(date, job)
		record := make([]string, len(header))
		for i, col := range header {
			record[i] = values[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if len(jobs) > 0 {
		log.Printf("💾 Saved %d jobs to CSV dataset", len(jobs))
	}
	return nil
}

func (w *CSVWriter) row(date string, job models.Job) map[string]string {
	decision := DecisionSuppressed
	if job.ShouldAlert {
		decision = DecisionAlert
	}
	return map[string]string{
		"date":              date,
		"title":             orNA(job.Title),
		"source":            orNA(job.Source),
		"link":              orNA(job.URL),
		"location":          orNA(job.Location),
		"stipend_mentioned": pyBool(job.HasStipend),
		"easy_apply":        pyBool(job.EasyApply),
		"ai_score":          formatScore(job.SemanticScore),
		"keyword_score":     formatScore(job.KeywordScore),
		"hybrid_score":      formatScore(job.HybridScore),
		"keyword_pass":      pyBool(job.KeywordScore >= w.passThreshold),
		"final_decision":    decision,
		"company":           job.Company,
		"company_tier":      strconv.Itoa(job.CompanyTier),
		"company_score":     formatScore(job.CompanyScore),
		"final_rank":        formatScore(job.FinalRank),
	}
}

// readHeader returns the first record of an existing, non-empty file, or
// nil when the file has to be started.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	return header, nil
}

func missingColumns(header []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, h := range Header {
		if !have[h] {
			missing = append(missing, h)
		}
	}
	return missing
}

// pyBool keeps booleans compatible with datasets written by earlier tooling.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
