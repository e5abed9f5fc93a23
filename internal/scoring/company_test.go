package scoring

import (
	"testing"

	"go-internship-agent/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestTierTable_Classify(t *testing.T) {
	table := DefaultTierTable()

	tests := []struct {
		name      string
		company   string
		wantTier  int
		wantScore float64
	}{
		{"suffixes stripped", "Google India Private Limited", 1, 1.0},
		{"plain tier 1", "google", 1, 1.0},
		{"tier 1 with extra words", "Flipkart Internet Pvt Ltd", 1, 1.0},
		{"tier 2", "Hexaware Technologies", 2, 0.85},
		{"unknown", "Random Startup Pvt Ltd", 3, 0.4},
		{"empty", "", 3, 0.4},
		{"only suffixes", "Pvt Ltd", 3, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, score := table.Classify(tt.company)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestTierTable_EquivalentNames(t *testing.T) {
	table := DefaultTierTable()
	t1, s1 := table.Classify("Google India Private Limited")
	t2, s2 := table.Classify("google")
	assert.Equal(t, t1, t2)
	assert.Equal(t, s1, s2)
}

func TestTierTable_Info(t *testing.T) {
	info := DefaultTierTable().Info("Infosys Limited")

	assert.Equal(t, "Infosys Limited", info.OriginalName)
	assert.Equal(t, "infosys", info.NormalizedName)
	assert.Equal(t, 1, info.Tier)
	assert.Equal(t, "Tier 1 (Top Companies)", info.TierLabel)
	assert.True(t, info.TelegramAlert)

	info = DefaultTierTable().Info("Nobody Special")
	assert.Equal(t, 3, info.Tier)
	assert.False(t, info.TelegramAlert)
}

func TestTierTable_WithOverlay(t *testing.T) {
	table := DefaultTierTable().WithOverlay(config.TierFile{Version: "2025-02", Tier1: []string{" ACME "}})

	assert.Equal(t, "2025-02", table.Version)

	tier, _ := table.Classify("Acme Corp")
	assert.Equal(t, 1, tier)

	//tier 1 was replaced, so google is no longer known
	tier, _ = table.Classify("Google")
	assert.Equal(t, 3, tier)

	//tier 2 untouched
	tier, _ = table.Classify("Hexaware")
	assert.Equal(t, 2, tier)
}
