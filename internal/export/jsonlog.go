package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-internship-agent/internal/models"
)

// JSONLog writes each run's surfaced postings to
// <dir>/job-search-YYYY-MM-DD.json. A later run on the same day replaces
// the file.
type JSONLog struct {
	dir string
}

func NewJSONLog(dir string) *JSONLog {
	return &JSONLog{dir: dir}
}

func (l *JSONLog) Name() string { return "json-log" }

// Path is the file a run started at run.StartedAt writes to.
func (l *JSONLog) Path(run models.Run) string {
	return filepath.Join(l.dir, fmt.Sprintf("job-search-%s.json", run.StartedAt.Format("2006-01-02")))
}

func (l *JSONLog) Write(_ context.Context, run models.Run, jobs []models.Job) error {
	if len(jobs) == 0 {
		log.Println("ℹ️ No jobs to save.")
		return nil
	}

	//create logs directory if not exists
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	data, err := json.MarshalIndent(jobs, "", " ")
	if err != nil {
		return fmt.Errorf("marshal jobs: %w", err)
	}

	path := l.Path(run)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Printf("📁 Results saved to %s", path)
	return nil
}
