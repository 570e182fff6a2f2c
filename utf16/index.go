// Package utf16 implements fast searching and ordinal comparison over
// buffers of 16-bit code units.
//
// Every package-level function is a single pass over caller-owned memory:
// nothing is allocated, retained or mutated. The widest usable block width is
// probed once at start-up (see DetectedTier) and every function returns the
// same result whichever tier runs it. Units are compared by numeric value only;
// there is no case folding, normalization or surrogate handling.
package utf16

import "github.com/mhr3/veloz16/internal/bytealg"

// IndexUnit returns the index of the first instance of u in s, or -1 if u is
// not present in s.
func IndexUnit(s []uint16, u uint16) int {
	return indexFwd(s, newAny1(u), detectedTier)
}

// indexFwd is the forward scanner shared by the single and multi-unit
// searches. t is lowered to scalar for buffers too short to align.
func indexFwd[M matcher](s []uint16, m M, t Tier) int {
	t = effectiveTier(t, len(s))
	off := 0
	if t != TierScalar {
		prefix := bytealg.UnalignedCount(s, t.alignWidth())
		if i := scanFwd(s, m, 0, prefix); i >= 0 {
			return i
		}
		off = prefix
		if off < len(s) {
			var i int
			if off, i = blocksFwd(s, m, t, off); i >= 0 {
				return i
			}
		}
	}
	i := scanFwd(s, m, off, len(s))
	if bytealg.DebugAssertions {
		bytealg.Assert(i >= -1 && i < len(s), "forward scan returned %d for length %d", i, len(s))
	}
	return i
}

// scanFwd examines s[from:to] one unit at a time, four per iteration.
func scanFwd[M matcher](s []uint16, m M, from, to int) int {
	i := from
	for ; to-i >= 4; i += 4 {
		if m.match(s[i]) {
			return i
		}
		if m.match(s[i+1]) {
			return i + 1
		}
		if m.match(s[i+2]) {
			return i + 2
		}
		if m.match(s[i+3]) {
			return i + 3
		}
	}
	for ; i < to; i++ {
		if m.match(s[i]) {
			return i
		}
	}
	return -1
}

// blocksFwd runs whole tier blocks from the aligned offset off. It returns
// the offset where block processing stopped and the match index, or -1.
func blocksFwd[M matcher](s []uint16, m M, t Tier, off int) (int, int) {
	b := bytealg.AsBytes(s)
	n := len(s)
	width := t.Width()
	words := width / bytealg.UnitsPerWord

	if t == Tier256 && n-off >= 8 && !bytealg.Aligned(s, off, width) {
		// Aligned to 128 bits only; one narrow block reaches the 256-bit boundary.
		if k := blockFirst(b, off, 2, m); k >= 0 {
			return off, off + k
		}
		off += 8
	}

	for ; n-off >= width; off += width {
		if k := blockFirst(b, off, words, m); k >= 0 {
			return off, off + k
		}
	}

	if t == Tier256 && n-off >= 8 {
		if k := blockFirst(b, off, 2, m); k >= 0 {
			return off, off + k
		}
		off += 8
	}
	return off, -1
}
