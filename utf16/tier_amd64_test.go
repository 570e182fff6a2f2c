//go:build !noasm && amd64

package utf16

import (
	"testing"

	"github.com/segmentio/asm/cpu"
	"github.com/segmentio/asm/cpu/x86"
	"github.com/stretchr/testify/assert"
)

func TestDetectedTierAgreesWithCPUID(t *testing.T) {
	if DetectedTier() == Tier256 {
		assert.True(t, cpu.X86.Has(x86.AVX2), "256-bit tier selected without AVX2")
	}
	// SSE2 is part of the amd64 baseline.
	assert.GreaterOrEqual(t, DetectedTier(), Tier128)
}
