package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-internship-agent/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	// Poolers in transaction mode (PgBouncer, Supabase) do not support
	// prepared statements, so the statement cache stays off.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id UUID PRIMARY KEY,
	started_at TIMESTAMPTZ NOT NULL,
	collected INT NOT NULL DEFAULT 0,
	surfaced INT NOT NULL DEFAULT 0,
	alerted INT NOT NULL DEFAULT 0,
	status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scored_jobs (
	id UUID PRIMARY KEY,
	run_id UUID NOT NULL REFERENCES runs(id),
	source TEXT NOT NULL,
	title TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL UNIQUE,
	keyword_score DOUBLE PRECISION NOT NULL,
	ai_score DOUBLE PRECISION NOT NULL,
	hybrid_score DOUBLE PRECISION NOT NULL,
	company_tier INT NOT NULL,
	company_score DOUBLE PRECISION NOT NULL,
	final_rank DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_scored_jobs_final_rank ON scored_jobs (final_rank DESC);
`

// EnsureSchema creates the tables if they are missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ---------------- RUN OPERATIONS ----------------

func (r *Repository) Name() string { return "postgres" }

// Write stores the run and its postings. It lets Repository act as a run sink.
func (r *Repository) Write(ctx context.Context, run models.Run, jobs []models.Job) error {
	return r.SaveRun(ctx, run, jobs)
}

// SaveRun inserts the run row and upserts every posting on its URL, all in
// one transaction. A posting seen again is re-scored under the new run.
func (r *Repository) SaveRun(ctx context.Context, run models.Run, jobs []models.Job) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Status == "" {
		run.Status = models.RunStatusCompleted
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO runs (id, started_at, collected, surfaced, alerted, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.StartedAt, run.Collected, run.Surfaced, run.Alerted, string(run.Status))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	batch := &pgx.Batch{}
	for _, j := range jobs {
		batch.Queue(`
			INSERT INTO scored_jobs (id, run_id, source, title, company, url, keyword_score, ai_score,
				hybrid_score, company_tier, company_score, final_rank)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (url)
			DO UPDATE SET run_id = EXCLUDED.run_id, title = EXCLUDED.title, company = EXCLUDED.company,
				keyword_score = EXCLUDED.keyword_score, ai_score = EXCLUDED.ai_score,
				hybrid_score = EXCLUDED.hybrid_score, company_tier = EXCLUDED.company_tier,
				company_score = EXCLUDED.company_score, final_rank = EXCLUDED.final_rank`,
			uuid.NewString(), run.ID, j.Source, j.Title, j.Company, j.URL, j.KeywordScore, j.SemanticScore,
			j.HybridScore, j.CompanyTier, j.CompanyScore, j.FinalRank)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save jobs: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	log.Printf("💾 Saved run %s with %d jobs to Postgres", run.ID, len(jobs))
	return nil
}

// ---------------- JOB OPERATIONS ----------------

// TopJobs returns the best ranked stored postings.
func (r *Repository) TopJobs(ctx context.Context, limit int) ([]models.StoredJob, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, run_id, source, title, company, url, keyword_score, ai_score, hybrid_score,
			company_tier, company_score, final_rank, created_at
		FROM scored_jobs
		ORDER BY final_rank DESC, created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.StoredJob])
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return jobs, nil
}
