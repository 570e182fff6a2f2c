package utf16

import (
	"encoding/binary"
	"strings"
	stdlib "unicode/utf16"
)

// units encodes s into UTF-16 code units.
func units(s string) []uint16 {
	return stdlib.Encode([]rune(s))
}

// unitsFromBytes packs b into code units two bytes at a time, dropping an odd
// trailing byte.
func unitsFromBytes(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out
}

// filled returns n copies of u.
func filled(n int, u uint16) []uint16 {
	s := make([]uint16, n)
	for i := range s {
		s[i] = u
	}
	return s
}

// allTiers lists every tier. The block kernels are plain Go, so each tier can
// be exercised on any machine regardless of what DetectedTier reports.
func allTiers() []Tier {
	return []Tier{TierScalar, TierNative, Tier128, Tier256}
}

// atOffset copies s into a larger backing array starting at unit off, so the
// scanners see every origin alignment.
func atOffset(s []uint16, off int) []uint16 {
	backing := make([]uint16, off+len(s)+16)
	copy(backing[off:], s)
	return backing[off : off+len(s) : off+len(s)]
}

func indexUnitNaive(s []uint16, u uint16) int {
	for i, c := range s {
		if c == u {
			return i
		}
	}
	return -1
}

func lastIndexUnitNaive(s []uint16, u uint16) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == u {
			return i
		}
	}
	return -1
}

func indexAnyNaive(s []uint16, targets []uint16) int {
	best := -1
	for _, u := range targets {
		if i := indexUnitNaive(s, u); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

func indexSubNaive(s, sub []uint16) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// minIndex is the leftmost start of any of patterns in s.
func minIndex(s []uint16, patterns [][]uint16) int {
	best := -1
	for _, p := range patterns {
		if i := indexSubNaive(s, p); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

func compareNaive(a, b []uint16) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func repeat(s string, n int) []uint16 {
	return units(strings.Repeat(s, n))
}
