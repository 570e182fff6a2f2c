// Package bytealg holds every raw memory access used by the code-unit
// scanners: byte views over []uint16, multi-unit word loads, address
// alignment probes and bulk equality. Nothing outside this package converts
// pointers or reads more than one unit at a time.
package bytealg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// UnitsPerWord is the number of 16-bit code units held by one word load.
const UnitsPerWord = 4

// AsBytes returns the native-order byte view of s. The view aliases s and
// must not outlive the call that produced it.
func AsBytes(s []uint16) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*2)
}

// Word loads the four code units starting at unit index i of the byte view b.
// Unit i+k is returned in bits 16k..16k+15 regardless of host byte order.
func Word(b []byte, i int) uint64 {
	if DebugAssertions {
		Assert(i >= 0 && 2*i+8 <= len(b), "word load at unit %d outside [0, %d)", i, len(b)/2)
	}
	w := binary.LittleEndian.Uint64(b[2*i:])
	if cpu.IsBigEndian {
		w = swapLanes(w)
	}
	return w
}

// Word32 loads the two code units starting at unit index i, in the same lane
// order as Word.
func Word32(b []byte, i int) uint32 {
	if DebugAssertions {
		Assert(i >= 0 && 2*i+4 <= len(b), "half-word load at unit %d outside [0, %d)", i, len(b)/2)
	}
	w := binary.LittleEndian.Uint32(b[2*i:])
	if cpu.IsBigEndian {
		w = uint32(swapLanes(uint64(w)))
	}
	return w
}

// swapLanes converts a little-endian decode of big-endian units back to
// unit values.
func swapLanes(w uint64) uint64 {
	const lo = 0x00FF00FF00FF00FF
	return (w&lo)<<8 | (w>>8)&lo
}

// UnalignedCount reports how many leading units of s have to be examined one
// at a time before the cursor sits on a width*2 byte boundary. width is in
// units and must be a power of two. When the origin is not even unit-aligned
// no boundary is reachable and len(s) is returned.
func UnalignedCount(s []uint16, width int) int {
	if DebugAssertions {
		Assert(width > 0 && width&(width-1) == 0, "width %d is not a power of two", width)
	}
	if len(s) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	if addr&1 != 0 {
		return len(s)
	}
	n := int(((-addr) & uintptr(2*width-1)) >> 1)
	if n > len(s) {
		n = len(s)
	}
	return n
}

// UnalignedTailCount is the mirror of UnalignedCount for scans that run from
// the end of s: it reports how many trailing units sit past the last
// width*2 byte boundary inside s.
func UnalignedTailCount(s []uint16, width int) int {
	if DebugAssertions {
		Assert(width > 0 && width&(width-1) == 0, "width %d is not a power of two", width)
	}
	if len(s) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	if addr&1 != 0 {
		return len(s)
	}
	end := addr + uintptr(len(s))*2
	n := int((end & uintptr(2*width-1)) >> 1)
	if n > len(s) {
		n = len(s)
	}
	return n
}

// Aligned reports whether unit index i of s starts on a width*2 byte boundary.
func Aligned(s []uint16, i, width int) bool {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s))) + uintptr(i)*2
	return addr&uintptr(2*width-1) == 0
}

// SameOrigin reports whether a and b start at the same address.
func SameOrigin(a, b []uint16) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// Equal reports whether a and b hold the same units.
func Equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	return bytes.Equal(AsBytes(a), AsBytes(b))
}

// Assert panics with the formatted message when cond is false. Callers guard
// it with DebugAssertions so release builds compile the check away.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("bytealg: "+format, args...))
	}
}
