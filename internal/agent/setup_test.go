package agent

import (
	"os"
	"path/filepath"
	"testing"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/dedup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScoring_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	tiers := filepath.Join(dir, "tiers.yaml")
	require.NoError(t, os.WriteFile(tiers, []byte("version: \"2026-03\"\ntier1: [\"Zephyr Labs\"]\n"), 0644))

	cfg := config.Default()
	cfg.TiersPath = tiers
	cfg.ProfilePath = filepath.Join(dir, "missing-profile.yaml")

	sc, err := BuildScoring(cfg)
	require.NoError(t, err)
	assert.Equal(t, "2026-03", sc.Tiers.Version)

	tier, _ := sc.Tiers.Classify("Zephyr Labs Pvt Ltd")
	assert.Equal(t, 1, tier)
}

func TestBuildScoring_EmbeddingNeedsNoNetworkToBuild(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.SemanticStrategy = "embedding"
	cfg.Embedding.BaseURL = "http://127.0.0.1:1"

	sc, err := BuildScoring(cfg)
	require.NoError(t, err)
	assert.Equal(t, "embedding", sc.Semantic.Name())
}

func TestBuildScrapers_RespectsEnabled(t *testing.T) {
	cfg := config.Default()
	off := false
	cfg.Sources.Naukri.Enabled = &off

	fetcher, release, err := BuildFetcher(cfg)
	require.NoError(t, err)
	defer release()

	var names []string
	for _, s := range BuildScrapers(cfg, fetcher) {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"Internshala", "LinkedIn", "Indeed"}, names)
}

func TestOpenHistory(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.History.Path = filepath.Join(dir, "jobs_history.json")
	store, closer, err := OpenHistory(cfg)
	require.NoError(t, err)
	assert.IsType(t, &dedup.FileStore{}, store)
	require.NoError(t, closer.Close())

	cfg.History.Backend = "sqlite"
	cfg.History.Path = filepath.Join(dir, "jobs_history.db")
	store, closer, err = OpenHistory(cfg)
	require.NoError(t, err)
	assert.IsType(t, &dedup.SQLiteStore{}, store)
	require.NoError(t, closer.Close())
}
