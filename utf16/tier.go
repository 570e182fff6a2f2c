package utf16

// Tier is a scanning strategy, distinguished by how many code units one block
// step examines. Tiers are ordered from narrowest to widest.
type Tier uint8

const (
	// TierScalar examines one unit at a time.
	TierScalar Tier = iota
	// TierNative examines one machine word (four units) per block.
	TierNative
	// Tier128 examines 128 bits (eight units) per block.
	Tier128
	// Tier256 examines 256 bits (sixteen units) per block.
	Tier256
)

func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierNative:
		return "native"
	case Tier128:
		return "128"
	case Tier256:
		return "256"
	}
	return "unknown"
}

// Width returns the number of code units examined per block step.
func (t Tier) Width() int {
	switch t {
	case TierNative:
		return 4
	case Tier128:
		return 8
	case Tier256:
		return 16
	}
	return 1
}

// alignWidth is the boundary, in units, the scalar prefix advances to before
// the block loop starts. The 256-bit tier aligns to 128 bits first and then
// takes one 128-bit step when needed.
func (t Tier) alignWidth() int {
	switch t {
	case TierNative:
		return 4
	case Tier128, Tier256:
		return 8
	}
	return 1
}

// detectedTier is probed once; per-architecture files provide detectTier.
var detectedTier = detectTier()

// DetectedTier reports the widest tier usable on the running machine.
func DetectedTier() Tier {
	return detectedTier
}

// effectiveTier lowers t to TierScalar when n units are too few to align and
// still run at least one block.
func effectiveTier(t Tier, n int) Tier {
	if t == TierScalar || n < 2*t.alignWidth() {
		return TierScalar
	}
	return t
}
