package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierExcellent},
		{5, TierExcellent},
		{6, TierVeryGood},
		{10, TierVeryGood},
		{11, TierModerate},
		{15, TierModerate},
		{16, TierConcerning},
		{20, TierConcerning},
		{21, TierSevere},
		{25, TierSevere},
		{-3, TierExcellent},
		{99, TierSevere},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "TierFor(%d)", tt.score)
	}
}

func TestTierFor_Monotonic(t *testing.T) {
	prev := TierFor(0)
	for score := 1; score <= MaxScore; score++ {
		got := TierFor(score)
		assert.GreaterOrEqual(t, int(got), int(prev), "tier decreased at score %d", score)
		prev = got
	}
}

func TestTierFor_CoversEveryTier(t *testing.T) {
	seen := make(map[Tier]bool)
	for score := 0; score <= MaxScore; score++ {
		seen[TierFor(score)] = true
	}
	for _, tier := range AllTiers() {
		assert.True(t, seen[tier], "tier %s unreachable in [0,%d]", tier, MaxScore)
	}
}

func TestTierLabels(t *testing.T) {
	tests := []struct {
		tier   Tier
		name   string
		symbol Symbol
	}{
		{TierExcellent, "Excellent", SymbolSparkles},
		{TierVeryGood, "Very Good", SymbolSun},
		{TierModerate, "Moderate", SymbolBrain},
		{TierConcerning, "Concerning", SymbolThermometer},
		{TierSevere, "Severe", SymbolHeart},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.tier.String())
		assert.Equal(t, tt.symbol, tt.tier.Symbol())
		assert.NotEmpty(t, tt.tier.Description())
	}
	assert.Equal(t, "Unknown", Tier(42).String())
	assert.Empty(t, Tier(42).Description())
}
