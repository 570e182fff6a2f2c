package utf16

import "github.com/mhr3/veloz16/internal/bytealg"

// Index returns the index of the first instance of sub in s, or -1 if sub is
// not present in s. An empty sub matches at 0, even when s is empty.
func Index(s, sub []uint16) int {
	return indexSub(s, sub, detectedTier)
}

// indexSub finds candidates for the head of sub with the forward scanner and
// verifies the remaining units in place. Candidates are only searched where
// the whole of sub still fits.
func indexSub(s, sub []uint16, t Tier) int {
	switch {
	case len(sub) == 0:
		return 0
	case len(sub) == 1:
		return indexFwd(s, newAny1(sub[0]), t)
	case len(sub) > len(s):
		return -1
	}

	head := newAny1(sub[0])
	tail := sub[1:]
	limit := len(s) - len(tail)

	for idx := 0; idx < limit; idx++ {
		rel := indexFwd(s[idx:limit], head, t)
		if rel < 0 {
			return -1
		}
		idx += rel
		if bytealg.Equal(s[idx+1:idx+1+len(tail)], tail) {
			return idx
		}
	}
	return -1
}
