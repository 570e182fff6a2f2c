package utf16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierString(t *testing.T) {
	tests := []struct {
		tier  Tier
		name  string
		width int
	}{
		{TierScalar, "scalar", 1},
		{TierNative, "native", 4},
		{Tier128, "128", 8},
		{Tier256, "256", 16},
		{Tier(42), "unknown", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.tier.String())
		assert.Equal(t, tt.width, tt.tier.Width())
	}
}

func TestTiersOrdered(t *testing.T) {
	tiers := allTiers()
	for i := 1; i < len(tiers); i++ {
		assert.Less(t, tiers[i-1], tiers[i])
		assert.Less(t, tiers[i-1].Width(), tiers[i].Width())
	}
}

func TestDetectedTierStable(t *testing.T) {
	first := DetectedTier()
	for range 10 {
		assert.Equal(t, first, DetectedTier())
	}
	assert.Contains(t, allTiers(), first)
}

func TestEffectiveTier(t *testing.T) {
	tests := []struct {
		tier Tier
		n    int
		want Tier
	}{
		{TierScalar, 0, TierScalar},
		{TierScalar, 1000, TierScalar},
		{TierNative, 7, TierScalar},
		{TierNative, 8, TierNative},
		{Tier128, 15, TierScalar},
		{Tier128, 16, Tier128},
		{Tier256, 15, TierScalar},
		{Tier256, 16, Tier256},
		{Tier256, 1 << 20, Tier256},
	}
	for _, tt := range tests {
		if got := effectiveTier(tt.tier, tt.n); got != tt.want {
			t.Errorf("effectiveTier(%v, %d) = %v, want %v", tt.tier, tt.n, got, tt.want)
		}
	}
}
