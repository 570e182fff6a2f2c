package utf16

// maxFused is the largest target set scanned in a single fused pass.
const maxFused = 5

type any2 struct {
	b0, b1 uint64
	u0, u1 uint16
}

func (m any2) mask(w uint64) uint64 {
	return zeroLanes(w^m.b0) | zeroLanes(w^m.b1)
}

func (m any2) match(u uint16) bool {
	return u == m.u0 || u == m.u1
}

type any3 struct {
	b0, b1, b2 uint64
	u0, u1, u2 uint16
}

func (m any3) mask(w uint64) uint64 {
	return zeroLanes(w^m.b0) | zeroLanes(w^m.b1) | zeroLanes(w^m.b2)
}

func (m any3) match(u uint16) bool {
	return u == m.u0 || u == m.u1 || u == m.u2
}

type any4 struct {
	b0, b1, b2, b3 uint64
	u0, u1, u2, u3 uint16
}

func (m any4) mask(w uint64) uint64 {
	return zeroLanes(w^m.b0) | zeroLanes(w^m.b1) | zeroLanes(w^m.b2) | zeroLanes(w^m.b3)
}

func (m any4) match(u uint16) bool {
	return u == m.u0 || u == m.u1 || u == m.u2 || u == m.u3
}

type any5 struct {
	b0, b1, b2, b3, b4 uint64
	u0, u1, u2, u3, u4 uint16
}

func (m any5) mask(w uint64) uint64 {
	return zeroLanes(w^m.b0) | zeroLanes(w^m.b1) | zeroLanes(w^m.b2) |
		zeroLanes(w^m.b3) | zeroLanes(w^m.b4)
}

func (m any5) match(u uint16) bool {
	return u == m.u0 || u == m.u1 || u == m.u2 || u == m.u3 || u == m.u4
}

// IndexAny2 returns the index of the first instance of u0 or u1 in s, or -1
// if neither is present. Both targets are checked in the same pass.
func IndexAny2(s []uint16, u0, u1 uint16) int {
	return indexAny(s, []uint16{u0, u1}, detectedTier)
}

// IndexAny3 returns the index of the first instance of any of u0, u1, u2 in
// s, or -1 if none is present.
func IndexAny3(s []uint16, u0, u1, u2 uint16) int {
	return indexAny(s, []uint16{u0, u1, u2}, detectedTier)
}

// IndexAny4 returns the index of the first instance of any of u0..u3 in s, or
// -1 if none is present.
func IndexAny4(s []uint16, u0, u1, u2, u3 uint16) int {
	return indexAny(s, []uint16{u0, u1, u2, u3}, detectedTier)
}

// IndexAny5 returns the index of the first instance of any of u0..u4 in s, or
// -1 if none is present.
func IndexAny5(s []uint16, u0, u1, u2, u3, u4 uint16) int {
	return indexAny(s, []uint16{u0, u1, u2, u3, u4}, detectedTier)
}

// IndexAny returns the index of the first unit of s that equals any of units,
// or -1. Up to five targets are scanned in one fused pass; longer target
// lists are scanned five at a time, each pass bounded by the best match
// found so far.
func IndexAny(s []uint16, units ...uint16) int {
	return indexAny(s, units, detectedTier)
}

func indexAny(s []uint16, units []uint16, t Tier) int {
	if len(units) <= maxFused {
		return indexFused(s, units, t)
	}

	best := -1
	for len(units) > 0 && len(s) > 0 {
		n := min(maxFused, len(units))
		if i := indexFused(s, units[:n], t); i >= 0 {
			best = i
			s = s[:i]
		}
		units = units[n:]
	}
	return best
}

func indexFused(s []uint16, units []uint16, t Tier) int {
	switch len(units) {
	case 0:
		return -1
	case 1:
		return indexFwd(s, newAny1(units[0]), t)
	case 2:
		return indexFwd(s, any2{
			b0: broadcast(units[0]), b1: broadcast(units[1]),
			u0: units[0], u1: units[1],
		}, t)
	case 3:
		return indexFwd(s, any3{
			b0: broadcast(units[0]), b1: broadcast(units[1]), b2: broadcast(units[2]),
			u0: units[0], u1: units[1], u2: units[2],
		}, t)
	case 4:
		return indexFwd(s, any4{
			b0: broadcast(units[0]), b1: broadcast(units[1]), b2: broadcast(units[2]), b3: broadcast(units[3]),
			u0: units[0], u1: units[1], u2: units[2], u3: units[3],
		}, t)
	case 5:
		return indexFwd(s, any5{
			b0: broadcast(units[0]), b1: broadcast(units[1]), b2: broadcast(units[2]),
			b3: broadcast(units[3]), b4: broadcast(units[4]),
			u0: units[0], u1: units[1], u2: units[2], u3: units[3], u4: units[4],
		}, t)
	}
	panic("utf16: fused scan supports at most five targets")
}
