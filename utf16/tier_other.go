//go:build !noasm && !amd64 && !arm64

package utf16

func detectTier() Tier {
	return TierNative
}
