// Package domain holds the runtime's core value types.
package domain

import (
	"slices"
	"sync/atomic"
	"unicode/utf16"

	"go.trai.ch/zerr"
)

// SmallCap is the maximum number of code units a StringValue stores inline.
// One machine word holds three 16-bit units plus the length byte; anything
// longer moves to a shared heap block.
const SmallCap = 3

// StringValue is the runtime's immutable string. It is a sequence of 16-bit
// code units that never changes after construction. Values of up to SmallCap
// units live entirely inside the struct; longer values share a heap block
// that also memoizes the 32-bit hash.
//
// The zero StringValue is the empty string.
type StringValue struct {
	// big is nil for the small layout. A non-nil big is the layout
	// discriminant; the small fields are meaningless when it is set.
	big   *bigBlock
	small [SmallCap]uint16
	n     uint8
}

// bigBlock is the shared heap allocation behind a big StringValue. The unit
// slice is never written after the block is created; only the hash cache
// transitions, once, from unset to computed.
type bigBlock struct {
	units []uint16
	cache atomic.Uint64
}

// cacheReady marks the hash cache as computed. Packing the flag and the
// 32-bit hash into one atomically stored word keeps a concurrent Hash race
// benign: both writers store the same fully-formed word, and a hash that
// happens to equal zero is still cached.
const cacheReady = uint64(1) << 32

// New builds a StringValue by copying units. The source slice may be reused
// or mutated by the caller afterwards.
func New(units []uint16) StringValue {
	if len(units) <= SmallCap {
		return newSmall(units)
	}
	return StringValue{big: &bigBlock{units: slices.Clone(units)}}
}

// Borrow builds a StringValue around the caller's slice without copying.
// The caller must guarantee the slice is never mutated and stays valid for
// as long as any value derived from it. Short inputs are stored inline, so
// borrowing only avoids a copy past SmallCap units.
func Borrow(units []uint16) StringValue {
	if len(units) <= SmallCap {
		return newSmall(units)
	}
	return StringValue{big: &bigBlock{units: units}}
}

// FromString builds a StringValue from a Go string, converting it to UTF-16
// code units.
func FromString(s string) StringValue {
	return Borrow(UnitsOf(s))
}

func newSmall(units []uint16) StringValue {
	var v StringValue
	v.n = uint8(copy(v.small[:], units))
	return v
}

// IsSmall reports whether the value is stored inline. It is true exactly
// when Len() <= SmallCap; construction never produces a short big value.
func (v StringValue) IsSmall() bool {
	return v.big == nil
}

// Len returns the number of code units.
func (v StringValue) Len() int {
	if v.big == nil {
		return int(v.n)
	}
	return len(v.big.units)
}

// Units returns the full sequence of code units as a view, not a copy.
// Callers must not write through it.
func (v StringValue) Units() []uint16 {
	if v.big == nil {
		return v.small[:v.n]
	}
	return v.big.units
}

// At returns the code unit at position i.
func (v StringValue) At(i int) (uint16, error) {
	if i < 0 || i >= v.Len() {
		return 0, zerr.With(zerr.With(ErrIndexOutOfRange, "index", i), "len", v.Len())
	}
	return v.Units()[i], nil
}

// Slice returns a view of the code units in the half-open range [start, end).
// The view shares storage with v and is only valid while v is reachable.
func (v StringValue) Slice(start, end int) ([]uint16, error) {
	if start < 0 || end < start || end > v.Len() {
		return nil, zerr.With(zerr.With(zerr.With(ErrInvalidSliceRange, "start", start), "end", end), "len", v.Len())
	}
	return v.Units()[start:end], nil
}

// Concat returns a new StringValue holding v's units followed by o's.
// Neither operand is modified.
func (v StringValue) Concat(o StringValue) StringValue {
	total := v.Len() + o.Len()
	if total <= SmallCap {
		// Both operands must be small: each is no longer than the
		// combined length. Splice the inline buffers directly.
		var r StringValue
		copy(r.small[:], v.small[:v.n])
		copy(r.small[v.n:], o.small[:o.n])
		r.n = uint8(total)
		return r
	}
	units := make([]uint16, 0, total)
	units = append(units, v.Units()...)
	units = append(units, o.Units()...)
	return StringValue{big: &bigBlock{units: units}}
}

// Equal reports whether v and o hold the same code units, regardless of
// which layout either is stored in.
func (v StringValue) Equal(o StringValue) bool {
	return slices.Equal(v.Units(), o.Units())
}

// EqualUnits reports whether v's units match the raw sequence element-wise.
func (v StringValue) EqualUnits(units []uint16) bool {
	return slices.Equal(v.Units(), units)
}

// Hash returns the value's 32-bit hash. Strings consisting entirely of ASCII
// digits (the empty string included) hash to the decimal value of the digits
// XOR 0x55555555, so a string that reads as a non-negative integer shares a
// hash with the integer itself and can double as an array index key. All
// other strings use a word-wise multiplicative hash on a different scale.
//
// Big values compute the hash once and cache it in the shared block; small
// values recompute on every call. The cached value is stable for the block's
// lifetime even under concurrent first calls.
func (v StringValue) Hash() uint32 {
	if v.big == nil {
		return hashUnits(v.small[:v.n])
	}
	if c := v.big.cache.Load(); c&cacheReady != 0 {
		return uint32(c)
	}
	h := hashUnits(v.big.units)
	v.big.cache.Store(uint64(h) | cacheReady)
	return h
}

// ArrayIndex reports whether the value reads as a non-negative decimal
// integer and returns that integer. Such strings hash on the decimal fast
// path, so the returned index XOR 0x55555555 equals the value's hash and
// property lookup can treat the string as an array subscript directly.
// The empty string is not an index. Accumulation wraps in uint32, matching
// the hash.
func (v StringValue) ArrayIndex() (uint32, bool) {
	units := v.Units()
	if len(units) == 0 {
		return 0, false
	}
	var acc uint32
	for _, u := range units {
		if u < '0' || u > '9' {
			return 0, false
		}
		acc = acc*10 + uint32(u-'0')
	}
	return acc, true
}

// String converts the value back to a Go string, decoding surrogate pairs.
func (v StringValue) String() string {
	return string(utf16.Decode(v.Units()))
}

// UnitsOf converts a Go string to its UTF-16 code unit sequence.
func UnitsOf(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
