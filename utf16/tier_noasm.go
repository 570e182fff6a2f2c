//go:build noasm

package utf16

func detectTier() Tier {
	return TierScalar
}
