// Load envs from .env
// Load YAML config
// Apply defaults
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

// TierWeights tunes the tiered keyword scorer. Each tier has a per-match
// weight and a cap; the summed score is clamped to [0,1] afterwards.
type TierWeights struct {
	TitleHigh    float64 `yaml:"title_high" validate:"gte=0,lte=1"`
	TitleHighCap float64 `yaml:"title_high_cap" validate:"gte=0,lte=1"`
	TextHigh     float64 `yaml:"text_high" validate:"gte=0,lte=1"`
	TextHighCap  float64 `yaml:"text_high_cap" validate:"gte=0,lte=1"`
	Medium       float64 `yaml:"medium" validate:"gte=0,lte=1"`
	MediumCap    float64 `yaml:"medium_cap" validate:"gte=0,lte=1"`
	Positive     float64 `yaml:"positive" validate:"gte=0,lte=1"`
	PositiveCap  float64 `yaml:"positive_cap" validate:"gte=0,lte=1"`
	EntryBonus   float64 `yaml:"entry_bonus" validate:"gte=0,lte=1"`
}

func DefaultTierWeights() TierWeights {
	return TierWeights{
		TitleHigh: 0.20, TitleHighCap: 0.80,
		TextHigh: 0.10, TextHighCap: 0.40,
		Medium: 0.08, MediumCap: 0.30,
		Positive: 0.05, PositiveCap: 0.15,
		EntryBonus: 0.10,
	}
}

type HybridWeights struct {
	AI      float64 `yaml:"ai" validate:"gte=0,lte=1"`
	Keyword float64 `yaml:"keyword" validate:"gte=0,lte=1"`
}

type RankWeights struct {
	Hybrid  float64 `yaml:"hybrid" validate:"gte=0,lte=1"`
	Company float64 `yaml:"company" validate:"gte=0,lte=1"`
}

type Source struct {
	Enabled *bool  `yaml:"enabled"`
	URL     string `yaml:"url" validate:"omitempty,url"`
	Limit   int    `yaml:"limit" validate:"gte=0"`
}

// On reports whether the source should run. Sources are on unless disabled.
func (s Source) On() bool {
	return s.Enabled == nil || *s.Enabled
}

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	DatabaseURL    string `yaml:"database_url" env:"DATABASE_URL"`

	Sources struct {
		Internshala Source `yaml:"internshala"`
		LinkedIn    Source `yaml:"linkedin"`
		Naukri      Source `yaml:"naukri"`
		Indeed      Source `yaml:"indeed"`
	} `yaml:"sources"`

	Fetch struct {
		UseBrowser        bool    `yaml:"use_browser"`
		RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gt=0"`
		Burst             int     `yaml:"burst" validate:"gt=0"`
		TimeoutSeconds    int     `yaml:"timeout_seconds" validate:"gt=0"`
		UserAgent         string  `yaml:"user_agent" validate:"required"`
	} `yaml:"fetch"`

	Filter struct {
		RoleKeywords       []string `yaml:"role_keywords" validate:"dive,required"`
		RoleExclude        []string `yaml:"role_exclude" validate:"dive,required"`
		InternshipKeywords []string `yaml:"internship_keywords" validate:"dive,required"`
		Locations          []string `yaml:"locations" validate:"dive,required"`
		StipendKeywords    []string `yaml:"stipend_keywords" validate:"dive,required"`
		MaxAgeDays         int      `yaml:"max_age_days" validate:"gte=0"`
	} `yaml:"filter"`

	Scoring struct {
		TitleWeight          int           `yaml:"title_weight" validate:"gte=1,lte=8"`
		SemanticStrategy     string        `yaml:"semantic_strategy" validate:"oneof=keyword embedding"`
		FallbackOnError      bool          `yaml:"fallback_on_error"`
		EntryLevelTerms      []string      `yaml:"entry_level_terms" validate:"dive,required"`
		KeywordPassThreshold float64       `yaml:"keyword_pass_threshold" validate:"gte=0,lte=1"`
		Keyword              TierWeights   `yaml:"keyword"`
		SemanticKeyword      TierWeights   `yaml:"semantic_keyword"`
		Hybrid               HybridWeights `yaml:"hybrid"`
		Rank                 RankWeights   `yaml:"rank"`
	} `yaml:"scoring"`

	Embedding struct {
		BaseURL        string `yaml:"base_url" env:"EMBEDDING_BASE_URL"`
		Model          string `yaml:"model"`
		APIKey         string `yaml:"-" env:"EMBEDDING_API_KEY"`
		TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
	} `yaml:"embedding"`

	History struct {
		Backend string `yaml:"backend" validate:"oneof=json sqlite"`
		Path    string `yaml:"path" validate:"required"`
		MaxSize int    `yaml:"max_size" validate:"gt=0"`
	} `yaml:"history"`

	Notify struct {
		Enabled bool `yaml:"enabled"`
		TopN    int  `yaml:"top_n" validate:"gt=0"`
	} `yaml:"notify"`

	//Paths
	ProfilePath string `yaml:"profile_path"`
	TiersPath   string `yaml:"tiers_path"`
	CSVPath     string `yaml:"csv_path" validate:"required"`
	LogDir      string `yaml:"log_dir" validate:"required"`
	CookiesPath string `yaml:"cookies_path"`
}

// Load reads configs/config.yaml and exits on invalid configuration.
func Load() *Config {
	cfg, err := LoadFrom(DefaultPath)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	return cfg
}

// LoadFrom reads the YAML file at path (a missing file only warns), applies
// environment overrides and defaults, then validates the result.
func LoadFrom(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse is LoadFrom without validation.
func Parse(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		log.Printf("⚠️ Could not read %s, using defaults", path)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if key := os.Getenv("EMBEDDING_API_KEY"); key != "" {
		cfg.Embedding.APIKey = key
	}
	if base := os.Getenv("EMBEDDING_BASE_URL"); base != "" {
		cfg.Embedding.BaseURL = base
	}
	return nil
}

// Default returns a fully defaulted config without reading any file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	src := &cfg.Sources
	setSource(&src.Internshala, "https://internshala.com/internships/data-analyst-internship/")
	setSource(&src.LinkedIn, "https://www.linkedin.com/jobs/search/?keywords=data%20analyst%20intern&location=India")
	setSource(&src.Naukri, "https://www.naukri.com/data-analyst-intern-jobs")
	setSource(&src.Indeed, "https://in.indeed.com/rss?q=data+analyst+intern&l=India")

	if cfg.Fetch.RequestsPerSecond == 0 {
		cfg.Fetch.RequestsPerSecond = 0.5
	}
	if cfg.Fetch.Burst == 0 {
		cfg.Fetch.Burst = 1
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 15
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}

	f := &cfg.Filter
	if len(f.RoleKeywords) == 0 {
		f.RoleKeywords = []string{"data analyst", "business analyst", "analytics intern", "data analytics", "bi analyst", "business intelligence"}
	}
	if len(f.RoleExclude) == 0 {
		f.RoleExclude = []string{"senior", "sr.", "lead", "manager", "director", "head", "engineer", "scientist", "developer", "architect", "sales", "marketing", "hr", "recruiter"}
	}
	if len(f.InternshipKeywords) == 0 {
		f.InternshipKeywords = []string{"intern", "internship", "trainee", "fresher", "entry level", "entry-level"}
	}
	if len(f.Locations) == 0 {
		f.Locations = []string{"remote", "work from home", "wfh", "india", "pune", "mumbai", "bangalore", "delhi", "hyderabad", "chennai", "kolkata", "noida", "gurgaon"}
	}
	if len(f.StipendKeywords) == 0 {
		f.StipendKeywords = []string{"stipend", "paid", "₹", "rs.", "rs ", "inr", "salary", "compensation"}
	}
	if f.MaxAgeDays == 0 {
		f.MaxAgeDays = 60
	}

	s := &cfg.Scoring
	if s.TitleWeight == 0 {
		s.TitleWeight = 2
	}
	if s.SemanticStrategy == "" {
		s.SemanticStrategy = "keyword"
	}
	if len(s.EntryLevelTerms) == 0 {
		s.EntryLevelTerms = []string{"intern", "internship", "entry level", "junior"}
	}
	if s.KeywordPassThreshold == 0 {
		s.KeywordPassThreshold = 0.3
	}
	if s.Keyword == (TierWeights{}) {
		s.Keyword = DefaultTierWeights()
	}
	if s.SemanticKeyword == (TierWeights{}) {
		s.SemanticKeyword = DefaultTierWeights()
	}
	if s.Hybrid == (HybridWeights{}) {
		s.Hybrid = HybridWeights{AI: 0.7, Keyword: 0.3}
	}
	if s.Rank == (RankWeights{}) {
		s.Rank = RankWeights{Hybrid: 0.5, Company: 0.5}
	}

	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.TimeoutSeconds == 0 {
		cfg.Embedding.TimeoutSeconds = 30
	}

	if cfg.History.Backend == "" {
		cfg.History.Backend = "json"
	}
	if cfg.History.Path == "" {
		if cfg.History.Backend == "sqlite" {
			cfg.History.Path = "jobs_history.db"
		} else {
			cfg.History.Path = "jobs_history.json"
		}
	}
	if cfg.History.MaxSize == 0 {
		cfg.History.MaxSize = 1000
	}

	if cfg.Notify.TopN == 0 {
		cfg.Notify.TopN = 15
	}

	if cfg.CSVPath == "" {
		cfg.CSVPath = "jobs_dataset.csv"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "logs"
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = "../.cookies"
	}
}

func setSource(s *Source, url string) {
	if s.URL == "" {
		s.URL = url
	}
	if s.Limit == 0 {
		s.Limit = 15
	}
}
