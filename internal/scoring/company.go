package scoring

import (
	"log"
	"strings"

	"go-internship-agent/internal/config"
)

const (
	Tier1Score = 1.0
	Tier2Score = 0.85
	Tier3Score = 0.4
)

// CompanyInfo is the detailed classification returned by TierTable.Info.
type CompanyInfo struct {
	OriginalName   string  `json:"original_name"`
	NormalizedName string  `json:"normalized_name"`
	Tier           int     `json:"tier"`
	TierLabel      string  `json:"tier_label"`
	CompanyScore   float64 `json:"company_score"`
	TelegramAlert  bool    `json:"telegram_alert"`
}

// TierTable classifies companies into three tiers. It is immutable after
// construction and safe for concurrent use.
type TierTable struct {
	Version string
	tier1   []string
	tier2   []string
}

// NewTierTable builds a table from raw entries. Entries are lowercased and
// trimmed; blanks and duplicates are dropped while preserving order.
func NewTierTable(version string, tier1, tier2 []string) *TierTable {
	return &TierTable{
		Version: version,
		tier1:   cleanEntries(tier1),
		tier2:   cleanEntries(tier2),
	}
}

func DefaultTierTable() *TierTable {
	return NewTierTable(TierTableVersion, DefaultTier1, DefaultTier2)
}

// WithOverlay returns a table where each non-empty overlay list replaces
// the corresponding built-in list.
func (t *TierTable) WithOverlay(tf config.TierFile) *TierTable {
	tier1, tier2 := t.tier1, t.tier2
	if len(tf.Tier1) > 0 {
		tier1 = tf.Tier1
	}
	if len(tf.Tier2) > 0 {
		tier2 = tf.Tier2
	}
	version := t.Version
	if tf.Version != "" {
		version = tf.Version
	}
	log.Printf("📋 Company tiers %s: %d tier-1, %d tier-2", version, len(tier1), len(tier2))
	return NewTierTable(version, tier1, tier2)
}

// Classify returns (tier, score) for a company name. A normalized name
// matches an entry when either contains the other; tier 1 is tried first.
// Empty or unknown names are tier 3.
func (t *TierTable) Classify(name string) (int, float64) {
	normalized := NormalizeCompanyName(name)
	if normalized == "" {
		return 3, Tier3Score
	}
	if matchAny(normalized, t.tier1) {
		return 1, Tier1Score
	}
	if matchAny(normalized, t.tier2) {
		return 2, Tier2Score
	}
	return 3, Tier3Score
}

func (t *TierTable) Info(name string) CompanyInfo {
	tier, score := t.Classify(name)
	return CompanyInfo{
		OriginalName:   name,
		NormalizedName: NormalizeCompanyName(name),
		Tier:           tier,
		TierLabel:      TierLabel(tier),
		CompanyScore:   score,
		TelegramAlert:  score >= AlertThreshold,
	}
}

func TierLabel(tier int) string {
	switch tier {
	case 1:
		return "Tier 1 (Top Companies)"
	case 2:
		return "Tier 2 (Mid-size/Startups)"
	default:
		return "Tier 3 (Others)"
	}
}

func matchAny(name string, entries []string) bool {
	for _, e := range entries {
		if strings.Contains(name, e) || strings.Contains(e, name) {
			return true
		}
	}
	return false
}

func cleanEntries(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
