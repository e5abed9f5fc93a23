package dedup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

type historyFile struct {
	SentLinks   []string `json:"sent_links"`
	LastUpdated string   `json:"last_updated"`
}

// FileStore keeps history in a JSON file. A sibling .lock file serializes
// concurrent runs, and writes go through a temp file plus rename.
type FileStore struct {
	path    string
	maxSize int
	lock    *flock.Flock
}

func NewFileStore(path string, maxSize int) *FileStore {
	return &FileStore{
		path:    path,
		maxSize: maxSize,
		lock:    flock.New(path + ".lock"),
	}
}

func (s *FileStore) acquire(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}
	ok, err := s.lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("lock %s: %w", s.lock.Path(), err)
	}
	if !ok {
		return fmt.Errorf("lock %s: not acquired", s.lock.Path())
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*History, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("⚠️ History file %s is unreadable, starting fresh: %v", s.path, err)
		}
		return NewHistory(s.maxSize), nil
	}

	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("⚠️ History file %s is corrupt, starting fresh: %v", s.path, err)
		return NewHistory(s.maxSize), nil
	}

	//keep only the newest links if the file outgrew max size
	links := f.SentLinks
	if s.maxSize > 0 && len(links) > s.maxSize {
		links = links[len(links)-s.maxSize:]
	}

	updated, _ := time.Parse(time.RFC3339, f.LastUpdated)
	h := restore(s.maxSize, links, updated)
	log.Printf("📋 Loaded %d previously sent jobs from %s", h.Len(), s.path)
	return h, nil
}

func (s *FileStore) Save(ctx context.Context, h *History) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.lock.Unlock()

	updated := h.LastUpdated()
	if updated.IsZero() {
		updated = time.Now()
	}
	data, err := json.MarshalIndent(historyFile{
		SentLinks:   h.Links(),
		LastUpdated: updated.Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}

	log.Printf("💾 Saved %d sent jobs to %s", h.Len(), s.path)
	return nil
}
