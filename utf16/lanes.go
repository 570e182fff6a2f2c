package utf16

import (
	"math/bits"

	"github.com/mhr3/veloz16/internal/bytealg"
)

// A word holds four 16-bit lanes; lane k occupies bits 16k..16k+15.
const (
	laneOnes = 0x0001000100010001
	laneLow  = 0x7FFF7FFF7FFF7FFF
)

// broadcast replicates u into every lane of a word.
func broadcast(u uint16) uint64 {
	return uint64(u) * laneOnes
}

// zeroLanes sets bit 16k+15 exactly when lane k of x is zero. Adding laneLow
// to the low fifteen bits of a lane cannot carry into the next lane, so
// unlike the classic haszero trick there are no false positives above a
// zero lane and the highest set bit is as trustworthy as the lowest.
func zeroLanes(x uint64) uint64 {
	return ^((x&laneLow + laneLow) | x | laneLow)
}

// firstLane returns the lowest matching lane of a non-zero mask.
func firstLane(mask uint64) int {
	return bits.TrailingZeros64(mask) >> 4
}

// lastLane returns the highest matching lane of a non-zero mask.
func lastLane(mask uint64) int {
	return (bits.Len64(mask) - 1) >> 4
}

// matcher decides lane and unit membership for one search target set.
type matcher interface {
	mask(w uint64) uint64
	match(u uint16) bool
}

type any1 struct {
	b0 uint64
	u0 uint16
}

func newAny1(u0 uint16) any1 {
	return any1{b0: broadcast(u0), u0: u0}
}

func (m any1) mask(w uint64) uint64 { return zeroLanes(w ^ m.b0) }
func (m any1) match(u uint16) bool  { return u == m.u0 }

// blockMasks computes the lane masks of the words in the block starting at
// unit off and reports their union.
func blockMasks[M matcher](b []byte, off, words int, m M, masks *[4]uint64) uint64 {
	var union uint64
	for w := 0; w < words; w++ {
		mk := m.mask(bytealg.Word(b, off+w*bytealg.UnitsPerWord))
		masks[w] = mk
		union |= mk
	}
	return union
}

// blockFirst returns the offset of the first matching unit in the block
// starting at unit off, or -1.
func blockFirst[M matcher](b []byte, off, words int, m M) int {
	var masks [4]uint64
	if blockMasks(b, off, words, m, &masks) == 0 {
		return -1
	}
	for w := 0; w < words; w++ {
		if masks[w] != 0 {
			return w*bytealg.UnitsPerWord + firstLane(masks[w])
		}
	}
	return -1
}

// blockLast returns the offset of the last matching unit in the block
// starting at unit off, or -1.
func blockLast[M matcher](b []byte, off, words int, m M) int {
	var masks [4]uint64
	if blockMasks(b, off, words, m, &masks) == 0 {
		return -1
	}
	for w := words - 1; w >= 0; w-- {
		if masks[w] != 0 {
			return w*bytealg.UnitsPerWord + lastLane(masks[w])
		}
	}
	return -1
}

// blockAny reports whether any unit of the block starting at unit off matches.
func blockAny[M matcher](b []byte, off, words int, m M) bool {
	var masks [4]uint64
	return blockMasks(b, off, words, m, &masks) != 0
}
