package scoring

import (
	"math"
	"strings"

	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
)

// Breakdown explains a tiered keyword score.
type Breakdown struct {
	TitleHigh     []string `json:"title_high"`
	TextHigh      []string `json:"text_high"`
	Medium        []string `json:"medium"`
	Positive      []string `json:"positive"`
	EntryLevel    bool     `json:"entry_level"`
	TitleHighPart float64  `json:"title_high_part"`
	TextHighPart  float64  `json:"text_high_part"`
	MediumPart    float64  `json:"medium_part"`
	PositivePart  float64  `json:"positive_part"`
	BonusPart     float64  `json:"bonus_part"`
	Total         float64  `json:"total"`
}

// TieredScorer scores a posting by counting profile keywords in tiers.
// Matching is case-insensitive substring containment.
type TieredScorer struct {
	weights     config.TierWeights
	titleWeight int
	high        []string
	medium      []string
	positive    []string
	entryLevel  []string
}

func NewTieredScorer(profile models.Profile, weights config.TierWeights, titleWeight int, entryLevel []string) TieredScorer {
	return TieredScorer{
		weights:     weights,
		titleWeight: titleWeight,
		high:        cleanEntries(profile.HighPrioritySkills),
		medium:      cleanEntries(profile.MediumPrioritySkills),
		positive:    cleanEntries(profile.PositiveKeywords),
		entryLevel:  cleanEntries(entryLevel),
	}
}

// Score returns a value in [0,1] rounded to 4 decimals.
func (s TieredScorer) Score(job *models.Job) float64 {
	return s.Explain(job).Total
}

func (s TieredScorer) Explain(job *models.Job) Breakdown {
	title := TitleText(job)
	text := FullText(job, s.titleWeight)
	w := s.weights

	b := Breakdown{
		TitleHigh: matches(title, s.high),
		TextHigh:  matches(text, s.high),
		Medium:    matches(text, s.medium),
		Positive:  matches(text, s.positive),
	}
	b.EntryLevel = len(matches(title, s.entryLevel)) > 0

	b.TitleHighPart = capped(len(b.TitleHigh), w.TitleHigh, w.TitleHighCap)
	b.TextHighPart = capped(len(b.TextHigh), w.TextHigh, w.TextHighCap)
	b.MediumPart = capped(len(b.Medium), w.Medium, w.MediumCap)
	b.PositivePart = capped(len(b.Positive), w.Positive, w.PositiveCap)
	if b.EntryLevel {
		b.BonusPart = w.EntryBonus
	}

	sum := b.TitleHighPart + b.TextHighPart + b.MediumPart + b.PositivePart + b.BonusPart
	b.Total = Round4(Clamp01(sum))
	return b
}

func matches(text string, terms []string) []string {
	found := []string{}
	if text == "" {
		return found
	}
	for _, t := range terms {
		if strings.Contains(text, t) {
			found = append(found, t)
		}
	}
	return found
}

func capped(n int, weight, limit float64) float64 {
	return math.Min(float64(n)*weight, limit)
}
