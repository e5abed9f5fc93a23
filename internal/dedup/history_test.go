package dedup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-internship-agent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_MarkSent(t *testing.T) {
	h := NewHistory(10)
	assert.True(t, h.IsNew("https://a"))

	h.MarkSent("https://a", "https://b")
	assert.False(t, h.IsNew("https://a"))
	assert.False(t, h.IsNew(" https://b "))
	assert.True(t, h.IsNew("https://c"))
	assert.False(t, h.LastUpdated().IsZero())

	//idempotent
	h.MarkSent("https://a", "", "https://a")
	assert.Equal(t, []string{"https://a", "https://b"}, h.Links())
}

func TestHistory_EvictsOldestFirst(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.MarkSent(fmt.Sprintf("link-%d", i))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"link-2", "link-3", "link-4"}, h.Links())
	assert.True(t, h.IsNew("link-0"))
	assert.False(t, h.IsNew("link-4"))
}

func TestHistory_DefaultMaxSize(t *testing.T) {
	assert.Equal(t, DefaultMaxSize, NewHistory(0).MaxSize())
}

func TestHistory_FilterNew(t *testing.T) {
	h := NewHistory(10)
	h.MarkSent("b")

	out := h.FilterNew([]models.Job{{URL: "a"}, {URL: "b"}, {URL: "c"}})
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].URL)
	assert.Equal(t, "c", out[1].URL)
}

func TestByTitle(t *testing.T) {
	jobs := []models.Job{
		{Title: "Data Analyst Intern", URL: "1"},
		{Title: "data analyst - intern", URL: "2"},
		{Title: "Business Analyst", URL: "3"},
		{Title: "!!!", URL: "4"},
		{Title: "", URL: "5"},
	}

	out := ByTitle(jobs)
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].URL)
	assert.Equal(t, "3", out[1].URL)
	assert.Empty(t, ByTitle(nil))
}

func testStores(t *testing.T, maxSize int) map[string]Store {
	dir := t.TempDir()
	sq, err := OpenSQLiteStore(filepath.Join(dir, "history.db"), maxSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(maxSize),
		"file":   NewFileStore(filepath.Join(dir, "nested", "history.json"), maxSize),
		"sqlite": sq,
	}
}

func TestStores_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			h, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, h.Len())

			h.MarkSent("a", "b", "c", "d")
			require.NoError(t, store.Save(ctx, h))

			again, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"b", "c", "d"}, again.Links())
			assert.False(t, again.IsNew("d"))
			assert.True(t, again.IsNew("a"))

			//saving twice must not duplicate
			require.NoError(t, store.Save(ctx, again))
			third, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, third.Len())
		})
	}
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	h, err := NewFileStore(path, 10).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestFileStore_UnreadableFileStartsEmpty(t *testing.T) {
	//a directory where the history file should be
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	h, err := NewFileStore(path, 10).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestSQLiteStore_CorruptFileIsReplaced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a sqlite database ", 400)), 0o644))

	store, err := OpenSQLiteStore(path, 10)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	h, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())

	h.MarkSent("https://x")
	require.NoError(t, store.Save(ctx, h))
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, again.IsNew("https://x"))

	aside, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	assert.Len(t, aside, 1)
}

func TestSQLiteStore_UnreadableTableStartsEmpty(t *testing.T) {
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "history.db"), 10)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.db.Exec(`DROP TABLE sent_links`)
	require.NoError(t, err)

	h, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestFileStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := NewFileStore(path, 10)

	h := NewHistory(10)
	h.MarkSent("https://x")
	require.NoError(t, store.Save(context.Background(), h))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sent_links"`)
	assert.Contains(t, string(data), `"last_updated"`)
	assert.Contains(t, string(data), `https://x`)

	//trims an oversized file to the newest links
	require.NoError(t, os.WriteFile(path, []byte(`{"sent_links":["1","2","3","4"],"last_updated":"2024-01-02T03:04:05Z"}`), 0o644))
	small, err := NewFileStore(path, 2).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, small.Links())
	assert.Equal(t, 2024, small.LastUpdated().Year())
}

func TestMemoryStore_CountsSaves(t *testing.T) {
	m := NewMemoryStore(10, "seed")
	h, err := m.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, h.IsNew("seed"))

	require.NoError(t, m.Save(context.Background(), h))
	assert.Equal(t, 1, m.Saves())
}
