package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Check runs struct-tag validation plus the cross-field rules that tags
// cannot express.
func Check(cfg *Config) Validation {
	var res Validation

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				res.addErr("%s failed %q (value: %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
		} else {
			res.addErr("%v", err)
		}
	}

	s := cfg.Scoring
	if !sumsToOne(s.Hybrid.AI, s.Hybrid.Keyword) {
		res.addErr("scoring.hybrid weights must sum to 1.0 (got %.4f)", s.Hybrid.AI+s.Hybrid.Keyword)
	}
	if !sumsToOne(s.Rank.Hybrid, s.Rank.Company) {
		res.addErr("scoring.rank weights must sum to 1.0 (got %.4f)", s.Rank.Hybrid+s.Rank.Company)
	}
	if s.TitleWeight != 2 {
		res.addWarn("scoring.title_weight is %d; scores are not comparable with runs using the default of 2", s.TitleWeight)
	}

	if s.SemanticStrategy == "embedding" && strings.TrimSpace(cfg.Embedding.BaseURL) == "" {
		res.addErr("embedding.base_url is required when scoring.semantic_strategy=embedding")
	}

	if cfg.Notify.Enabled {
		if cfg.TelegramToken == "" {
			res.addErr("TELEGRAM_BOT_TOKEN is required when notify.enabled=true")
		}
		if cfg.TelegramChatID == 0 {
			res.addErr("TELEGRAM_CHAT_ID is required when notify.enabled=true")
		}
	}

	if cfg.History.MaxSize < 100 {
		res.addWarn("history.max_size is very low (%d); old postings will be re-sent quickly", cfg.History.MaxSize)
	}

	src := cfg.Sources
	if !src.Internshala.On() && !src.LinkedIn.On() && !src.Naukri.On() && !src.Indeed.On() {
		res.addWarn("all sources are disabled; runs will find nothing")
	}

	return res
}

// Validate logs warnings and returns an error listing every failed rule.
func Validate(cfg *Config) error {
	res := Check(cfg)
	for _, w := range res.Warnings {
		log.Printf("⚠️ config: %s", w)
	}
	if res.OK() {
		return nil
	}
	return errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
}

func sumsToOne(a, b float64) bool {
	return math.Abs(a+b-1.0) < 1e-6
}
