package utf16

import "github.com/mhr3/veloz16/internal/bytealg"

// LastIndexUnit returns the index of the last instance of u in s, or -1 if u
// is not present in s.
func LastIndexUnit(s []uint16, u uint16) int {
	return indexRev(s, newAny1(u), detectedTier)
}

// indexRev mirrors indexFwd from the end of s: the alignment is anchored at
// the end and every block resolves to its highest matching lane.
func indexRev[M matcher](s []uint16, m M, t Tier) int {
	t = effectiveTier(t, len(s))
	end := len(s)
	if t != TierScalar {
		suffix := bytealg.UnalignedTailCount(s, t.alignWidth())
		if i := scanRev(s, m, end-suffix, end); i >= 0 {
			return i
		}
		end -= suffix
		if end > 0 {
			var i int
			if end, i = blocksRev(s, m, t, end); i >= 0 {
				return i
			}
		}
	}
	i := scanRev(s, m, 0, end)
	if bytealg.DebugAssertions {
		bytealg.Assert(i >= -1 && i < len(s), "reverse scan returned %d for length %d", i, len(s))
	}
	return i
}

// scanRev examines s[from:to] from high index to low, four per iteration.
func scanRev[M matcher](s []uint16, m M, from, to int) int {
	i := to
	for i-from >= 4 {
		i -= 4
		if m.match(s[i+3]) {
			return i + 3
		}
		if m.match(s[i+2]) {
			return i + 2
		}
		if m.match(s[i+1]) {
			return i + 1
		}
		if m.match(s[i]) {
			return i
		}
	}
	for i > from {
		i--
		if m.match(s[i]) {
			return i
		}
	}
	return -1
}

// blocksRev runs whole tier blocks downwards from the aligned end offset. It
// returns the offset where block processing stopped and the match index, or
// -1.
func blocksRev[M matcher](s []uint16, m M, t Tier, end int) (int, int) {
	b := bytealg.AsBytes(s)
	width := t.Width()
	words := width / bytealg.UnitsPerWord

	if t == Tier256 && end >= 8 && !bytealg.Aligned(s, end, width) {
		if k := blockLast(b, end-8, 2, m); k >= 0 {
			return end, end - 8 + k
		}
		end -= 8
	}

	for ; end >= width; end -= width {
		if k := blockLast(b, end-width, words, m); k >= 0 {
			return end, end - width + k
		}
	}

	if t == Tier256 && end >= 8 {
		if k := blockLast(b, end-8, 2, m); k >= 0 {
			return end, end - 8 + k
		}
		end -= 8
	}
	return end, -1
}
