package utf16

import "github.com/mhr3/veloz16/internal/bytealg"

// Compare returns an integer comparing a and b by code-unit value. The
// result is negative when a sorts first, zero when they are equal, and
// positive when b sorts first. A strict prefix sorts before the longer
// sequence.
//
// When the first difference is at unit i the result is int(a[i])-int(b[i]);
// otherwise it is len(a)-len(b).
func Compare(a, b []uint16) int {
	return compare(a, b, detectedTier)
}

// Equal reports whether a and b have the same length and hold the same units.
func Equal(a, b []uint16) bool {
	return bytealg.Equal(a, b)
}

func compare(a, b []uint16, t Tier) int {
	delta := len(a) - len(b)
	if bytealg.SameOrigin(a, b) {
		return delta
	}

	n := min(len(a), len(b))
	ba, bb := bytealg.AsBytes(a), bytealg.AsBytes(b)
	i := 0

	// Skip equal runs a block, then a word, at a time. Equality here is only
	// a shortcut; the sign always comes from the unit loop below.
	if width := t.Width(); t != TierScalar && n >= width {
		for ; n-i >= width; i += width {
			if !blockEqual(ba, bb, i, width/bytealg.UnitsPerWord) {
				break
			}
		}
	}
	for ; n-i >= bytealg.UnitsPerWord; i += bytealg.UnitsPerWord {
		if bytealg.Word(ba, i) != bytealg.Word(bb, i) {
			break
		}
	}
	if n-i >= 2 && bytealg.Word32(ba, i) == bytealg.Word32(bb, i) {
		i += 2
	}

	for ; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return delta
}

// blockEqual reports whether the block of words starting at unit off is
// identical in a and b.
func blockEqual(a, b []byte, off, words int) bool {
	var diff uint64
	for w := 0; w < words; w++ {
		at := off + w*bytealg.UnitsPerWord
		diff |= bytealg.Word(a, at) ^ bytealg.Word(b, at)
	}
	return diff == 0
}
