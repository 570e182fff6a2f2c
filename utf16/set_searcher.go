package utf16

import (
	"fmt"
	"sync"

	"github.com/coregx/ahocorasick"
)

const (
	// encodedUnitLen is the number of bytes a code unit occupies once
	// encoded for the automaton.
	encodedUnitLen = 3

	// maxPooledBuf caps the encode buffers kept for reuse.
	maxPooledBuf = 64 << 10
)

// SetSearcher finds the leftmost occurrence of any of a fixed set of
// sequences. Build once with NewSetSearcher, then call Index or Contains on
// many buffers. A SetSearcher is safe for concurrent use.
type SetSearcher struct {
	auto     *ahocorasick.Automaton
	byHead   map[uint16][][]uint16 // patterns keyed by their first unit
	maxLen   int                   // longest pattern, in units
	single   []uint16              // set when the set holds exactly one sequence
	hasEmpty bool
	count    int
	bufs     sync.Pool
}

// NewSetSearcher builds a searcher over patterns. Empty patterns are allowed
// and match at index 0 of every buffer. The patterns are copied.
func NewSetSearcher(patterns [][]uint16) (*SetSearcher, error) {
	ss := &SetSearcher{count: len(patterns)}
	ss.bufs.New = func() any {
		buf := make([]byte, 0, 1024)
		return &buf
	}

	var nonEmpty [][]uint16
	for _, p := range patterns {
		if len(p) == 0 {
			ss.hasEmpty = true
			continue
		}
		nonEmpty = append(nonEmpty, append([]uint16(nil), p...))
	}
	if ss.hasEmpty || len(nonEmpty) == 0 {
		return ss, nil
	}
	if len(nonEmpty) == 1 {
		ss.single = nonEmpty[0]
		return ss, nil
	}

	ss.byHead = make(map[uint16][][]uint16)
	builder := ahocorasick.NewBuilder()
	for _, p := range nonEmpty {
		builder.AddPattern(encodeUnits(nil, p))
		ss.byHead[p[0]] = append(ss.byHead[p[0]], p)
		ss.maxLen = max(ss.maxLen, len(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("utf16: build set searcher over %d patterns: %w", len(nonEmpty), err)
	}
	ss.auto = auto
	return ss, nil
}

// Len returns the number of patterns the searcher was built with.
func (ss *SetSearcher) Len() int {
	return ss.count
}

// Index returns the index of the leftmost unit of s at which any pattern of
// the set starts, or -1 if none occurs.
func (ss *SetSearcher) Index(s []uint16) int {
	switch {
	case ss.hasEmpty:
		return 0
	case ss.single != nil:
		return Index(s, ss.single)
	case ss.auto == nil:
		return -1
	}

	bp := ss.bufs.Get().(*[]byte)
	enc := encodeUnits((*bp)[:0], s)
	m := ss.auto.Find(enc, 0)
	ss.release(bp, enc)

	if m == nil {
		return -1
	}
	return ss.leftmost(s, m.Start/encodedUnitLen, m.End/encodedUnitLen)
}

// leftmost widens the match the automaton reported, which is the one that
// ends first, to the one that starts first. An earlier start must end at or
// after end, so it lies no further back than end-maxLen.
func (ss *SetSearcher) leftmost(s []uint16, start, end int) int {
	for p := max(0, end-ss.maxLen); p < start; p++ {
		for _, pat := range ss.byHead[s[p]] {
			if p+len(pat) <= len(s) && Equal(s[p:p+len(pat)], pat) {
				return p
			}
		}
	}
	return start
}

// Contains reports whether any pattern of the set occurs in s.
func (ss *SetSearcher) Contains(s []uint16) bool {
	switch {
	case ss.hasEmpty:
		return true
	case ss.single != nil:
		return Index(s, ss.single) >= 0
	case ss.auto == nil:
		return false
	}

	bp := ss.bufs.Get().(*[]byte)
	enc := encodeUnits((*bp)[:0], s)
	found := ss.auto.IsMatch(enc)
	ss.release(bp, enc)
	return found
}

// release returns an encode buffer to the pool unless it grew past
// maxPooledBuf.
func (ss *SetSearcher) release(bp *[]byte, enc []byte) {
	if cap(enc) > maxPooledBuf {
		return
	}
	*bp = enc
	ss.bufs.Put(bp)
}

// encodeUnits appends the self-synchronising encoding of s to dst. The first
// byte of every unit has its high bit set and the other two never do, so a
// byte-level match can only begin on a unit boundary.
func encodeUnits(dst []byte, s []uint16) []byte {
	for _, u := range s {
		dst = append(dst, 0x80|byte(u>>14), byte(u>>7)&0x7F, byte(u)&0x7F)
	}
	return dst
}
