package dedup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps history in a SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	maxSize int
}

// OpenSQLiteStore opens (or creates) the history database. A file that is
// not a usable database is moved aside to path.corrupt-<unix> and replaced
// by an empty one.
func OpenSQLiteStore(path string, maxSize int) (*SQLiteStore, error) {
	db, err := openHistoryDB(path)
	if err == nil {
		return &SQLiteStore{db: db, maxSize: maxSize}, nil
	}

	aside := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	log.Printf("⚠️ History db %s is unusable, moving it to %s and starting fresh: %v", path, aside, err)
	if rerr := os.Rename(path, aside); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
		return nil, fmt.Errorf("move corrupt history db: %w", rerr)
	}

	db, err = openHistoryDB(path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, maxSize: maxSize}, nil
}

func openHistoryDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS sent_links (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  link TEXT NOT NULL UNIQUE,
  sent_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS history_meta (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load never fails on unreadable rows; it logs and starts over empty.
func (s *SQLiteStore) Load(ctx context.Context) (*History, error) {
	links, updated, err := s.read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("⚠️ History db is unreadable, starting fresh: %v", err)
		return NewHistory(s.maxSize), nil
	}

	if s.maxSize > 0 && len(links) > s.maxSize {
		links = links[len(links)-s.maxSize:]
	}

	h := restore(s.maxSize, links, updated)
	log.Printf("📋 Loaded %d previously sent jobs from sqlite", h.Len())
	return h, nil
}

func (s *SQLiteStore) read(ctx context.Context) ([]string, time.Time, error) {
	var updated time.Time

	rows, err := s.db.QueryContext(ctx, `SELECT link FROM sent_links ORDER BY seq`)
	if err != nil {
		return nil, updated, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var links []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, updated, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, updated, err
	}

	var raw string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM history_meta WHERE key = 'last_updated'`).Scan(&raw)
	switch {
	case err == nil:
		updated, _ = time.Parse(time.RFC3339, raw)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, updated, fmt.Errorf("query history meta: %w", err)
	}
	return links, updated, nil
}

// Save replaces the stored links with the current history in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, h *History) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sent_links`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	now := time.Now().Format(time.RFC3339)
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sent_links (link, sent_at) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	links := h.Links()
	for _, l := range links {
		if _, err := stmt.ExecContext(ctx, l, now); err != nil {
			return fmt.Errorf("insert %s: %w", l, err)
		}
	}

	updated := h.LastUpdated()
	if updated.IsZero() {
		updated = time.Now()
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO history_meta (key, value) VALUES ('last_updated', ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, updated.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("update history meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("💾 Saved %d sent jobs to sqlite", len(links))
	return nil
}
