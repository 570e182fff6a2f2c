//go:build !noasm && arm64

package utf16

import "golang.org/x/sys/cpu"

var hasASIMD = cpu.ARM64.HasASIMD

func detectTier() Tier {
	if hasASIMD {
		return Tier128
	}
	return TierNative
}
