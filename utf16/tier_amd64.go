//go:build !noasm && amd64

package utf16

import "golang.org/x/sys/cpu"

var (
	hasSSE2 = cpu.X86.HasSSE2
	hasAVX2 = cpu.X86.HasAVX2
)

func detectTier() Tier {
	if hasAVX2 {
		return Tier256
	}
	if hasSSE2 {
		return Tier128
	}
	return TierNative
}
