package utf16

import "github.com/mhr3/veloz16/internal/bytealg"

// ContainsUnit reports whether u is present in s.
func ContainsUnit(s []uint16, u uint16) bool {
	return contains(s, newAny1(u), detectedTier)
}

// contains follows indexFwd but blocks only test whether any lane matched;
// no offset is ever extracted.
func contains[M matcher](s []uint16, m M, t Tier) bool {
	t = effectiveTier(t, len(s))
	off := 0
	if t != TierScalar {
		prefix := bytealg.UnalignedCount(s, t.alignWidth())
		if scanFwd(s, m, 0, prefix) >= 0 {
			return true
		}
		off = prefix

		b := bytealg.AsBytes(s)
		width := t.Width()
		words := width / bytealg.UnitsPerWord
		if off < len(s) {
			if t == Tier256 && len(s)-off >= 8 && !bytealg.Aligned(s, off, width) {
				if blockAny(b, off, 2, m) {
					return true
				}
				off += 8
			}
			for ; len(s)-off >= width; off += width {
				if blockAny(b, off, words, m) {
					return true
				}
			}
		}
	}
	return scanFwd(s, m, off, len(s)) >= 0
}
