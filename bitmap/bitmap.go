// Package bitmap provides the fixed-size bit sets used for edge liveness and
// node degree counting.
//
// A Bitmap wraps soniakeys/bits with uint64 indexing and the few word-level
// operations the trimmer needs in its hot loops (TestAndSet, bulk reset,
// population count). Index arguments are not bounds-checked beyond what the
// underlying slice access does: an out-of-range index panics like a slice
// access would, so callers validate once up front rather than per bit.
package bitmap

import (
	"errors"
	"fmt"
	"math"
	mbits "math/bits"

	"github.com/soniakeys/bits"
)

// ErrTooLarge is returned when the requested size cannot be addressed on
// this platform.
var ErrTooLarge = errors.New("bitmap: size exceeds addressable range")

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// Bitmap is a fixed-length set of bits, all zero after New.
type Bitmap struct {
	b bits.Bits
}

// New returns a zeroed bitmap of n bits.
func New(n uint64) (*Bitmap, error) {
	if n > math.MaxInt {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooLarge)
	}

	return &Bitmap{b: bits.New(int(n))}, nil
}

// MustNew is like New but panics on error. Intended for sizes already
// validated by the caller.
func MustNew(n uint64) *Bitmap {
	bm, err := New(n)
	if err != nil {
		panic(err)
	}

	return bm
}

// Bytes reports the memory footprint, in bytes, of an n-bit bitmap.
func Bytes(n uint64) uint64 {
	return (n + wordMask) / wordBits * 8
}

// Len returns the number of bits.
func (m *Bitmap) Len() uint64 { return uint64(m.b.Num) }

// Test reports whether bit i is set.
func (m *Bitmap) Test(i uint64) bool { return m.b.Bit(int(i)) == 1 }

// Set sets bit i.
func (m *Bitmap) Set(i uint64) { m.b.Bits[i>>wordShift] |= 1 << (i & wordMask) }

// Clear clears bit i.
func (m *Bitmap) Clear(i uint64) { m.b.Bits[i>>wordShift] &^= 1 << (i & wordMask) }

// TestAndSet sets bit i and reports whether it was already set.
func (m *Bitmap) TestAndSet(i uint64) bool {
	w := &m.b.Bits[i>>wordShift]
	mask := uint64(1) << (i & wordMask)
	was := *w&mask != 0
	*w |= mask

	return was
}

// SetAll sets every bit in [0, Len).
func (m *Bitmap) SetAll() {
	for i := range m.b.Bits {
		m.b.Bits[i] = math.MaxUint64
	}
	// Padding bits past Len must stay zero so Count stays exact.
	if tail := m.Len() & wordMask; tail != 0 {
		m.b.Bits[len(m.b.Bits)-1] = (1 << tail) - 1
	}
}

// Reset clears every bit.
func (m *Bitmap) Reset() {
	clear(m.b.Bits)
}

// Count returns the number of set bits.
func (m *Bitmap) Count() uint64 {
	var n int
	for _, w := range m.b.Bits {
		n += mbits.OnesCount64(w)
	}

	return uint64(n)
}

// NextSet returns the index of the first set bit at or after i, and false if
// there is none.
func (m *Bitmap) NextSet(i uint64) (uint64, bool) {
	if i >= m.Len() {
		return 0, false
	}
	n := m.b.OneFrom(int(i))
	if n < 0 {
		return 0, false
	}

	return uint64(n), true
}

// Each calls fn for every set bit in ascending order until fn returns false.
func (m *Bitmap) Each(fn func(i uint64) bool) {
	for i, ok := m.NextSet(0); ok; i, ok = m.NextSet(i + 1) {
		if !fn(i) {
			return
		}
	}
}

// Words exposes the backing words, least-significant bit first.
// Mutating the slice mutates the bitmap.
func (m *Bitmap) Words() []uint64 { return m.b.Bits }

// Clone returns an independent copy.
func (m *Bitmap) Clone() *Bitmap {
	c := bits.New(m.b.Num)
	copy(c.Bits, m.b.Bits)

	return &Bitmap{b: c}
}

// Equal reports whether m and o have the same length and bits.
func (m *Bitmap) Equal(o *Bitmap) bool {
	if m.b.Num != o.b.Num {
		return false
	}
	for i, w := range m.b.Bits {
		if o.b.Bits[i] != w {
			return false
		}
	}

	return true
}
