package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "DATABASE_URL", "EMBEDDING_API_KEY", "EMBEDDING_BASE_URL"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Scoring.TitleWeight)
	assert.Equal(t, "keyword", cfg.Scoring.SemanticStrategy)
	assert.Equal(t, HybridWeights{AI: 0.7, Keyword: 0.3}, cfg.Scoring.Hybrid)
	assert.Equal(t, RankWeights{Hybrid: 0.5, Company: 0.5}, cfg.Scoring.Rank)
	assert.Equal(t, DefaultTierWeights(), cfg.Scoring.Keyword)
	assert.Equal(t, 1000, cfg.History.MaxSize)
	assert.Equal(t, "jobs_history.json", cfg.History.Path)
	assert.Equal(t, 15, cfg.Sources.Internshala.Limit)
	assert.True(t, cfg.Sources.Indeed.On())
}

func TestLoadFrom_YAMLAndEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	path := writeFile(t, "config.yaml", `
sources:
  naukri:
    enabled: false
scoring:
  semantic_strategy: keyword
  hybrid:
    ai: 0.6
    keyword: 0.4
history:
  backend: sqlite
  max_size: 500
notify:
  enabled: true
  top_n: 5
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.TelegramToken)
	assert.Equal(t, int64(-100123), cfg.TelegramChatID)
	assert.False(t, cfg.Sources.Naukri.On())
	assert.NotEmpty(t, cfg.Sources.Naukri.URL)
	assert.True(t, cfg.Sources.LinkedIn.On())
	assert.Equal(t, HybridWeights{AI: 0.6, Keyword: 0.4}, cfg.Scoring.Hybrid)
	assert.Equal(t, "jobs_history.db", cfg.History.Path)
	assert.Equal(t, 500, cfg.History.MaxSize)
	assert.Equal(t, 5, cfg.Notify.TopN)
}

func TestLoadFrom_BadChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "TELEGRAM_CHAT_ID")
}

func TestLoadFrom_BadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "scoring: [oops")

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantErr   string
		wantWarn  string
		wantClean bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantClean: true,
		},
		{
			name:    "hybrid weights must sum to one",
			mutate:  func(c *Config) { c.Scoring.Hybrid = HybridWeights{AI: 0.7, Keyword: 0.7} },
			wantErr: "scoring.hybrid",
		},
		{
			name:    "rank weights must sum to one",
			mutate:  func(c *Config) { c.Scoring.Rank = RankWeights{Hybrid: 0.2, Company: 0.2} },
			wantErr: "scoring.rank",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Scoring.SemanticStrategy = "magic" },
			wantErr: "SemanticStrategy",
		},
		{
			name:    "embedding needs base url",
			mutate:  func(c *Config) { c.Scoring.SemanticStrategy = "embedding" },
			wantErr: "embedding.base_url",
		},
		{
			name:    "notify needs token",
			mutate:  func(c *Config) { c.Notify.Enabled = true; c.TelegramChatID = 1 },
			wantErr: "TELEGRAM_BOT_TOKEN",
		},
		{
			name:     "non-default title weight warns",
			mutate:   func(c *Config) { c.Scoring.TitleWeight = 3 },
			wantWarn: "title_weight",
		},
		{
			name: "all sources off warns",
			mutate: func(c *Config) {
				off := false
				c.Sources.Internshala.Enabled = &off
				c.Sources.LinkedIn.Enabled = &off
				c.Sources.Naukri.Enabled = &off
				c.Sources.Indeed.Enabled = &off
			},
			wantWarn: "all sources are disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			res := Check(cfg)

			if tt.wantClean {
				assert.True(t, res.OK(), "errors: %v", res.Errors)
				assert.Empty(t, res.Warnings)
			}
			if tt.wantErr != "" {
				require.False(t, res.OK())
				assert.Contains(t, joinAll(res.Errors), tt.wantErr)
			}
			if tt.wantWarn != "" {
				assert.True(t, res.OK(), "errors: %v", res.Errors)
				assert.Contains(t, joinAll(res.Warnings), tt.wantWarn)
			}
		})
	}
}

func joinAll(ss []string) string {
	out := ""
	for _, s := range ss {
		out += s + "\n"
	}
	return out
}

func TestLoadTierFile(t *testing.T) {
	tf, ok, err := LoadTierFile("")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, tf.Tier1)

	_, ok, err = LoadTierFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, ok)

	path := writeFile(t, "tiers.yaml", "version: \"2025-02\"\ntier1: [acme]\ntier2: [globex, initech]\n")
	tf, ok, err = LoadTierFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2025-02", tf.Version)
	assert.Equal(t, []string{"acme"}, tf.Tier1)
	assert.Equal(t, []string{"globex", "initech"}, tf.Tier2)
}

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Contains(t, p.HighPrioritySkills, "sql")

	path := writeFile(t, "profile.yaml", "summary: Aspiring analyst\nhigh_priority_skills: [r, julia]\n")
	p, err = LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Aspiring analyst", p.Summary)
	assert.Equal(t, []string{"r", "julia"}, p.HighPrioritySkills)
	//untouched fields keep defaults
	assert.Contains(t, p.MediumPrioritySkills, "pandas")
}
