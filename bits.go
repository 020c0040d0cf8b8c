package huffpack

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxBits is the capacity of a Bits value, and therefore the longest code
// this package can derive.
const MaxBits = 32

// Bits represents a short sequence of bits, such as a Huffman code.
//
// Bits are left-justified: the most significant bit of the underlying uint32
// is the first bit.  Bits values are immutable; Append returns a new value.
type Bits struct {
	data uint32
	size byte
}

// MakeBits is a convenience function that constructs a Bits.  The first
// argument is the number of valid bits and the second holds the bits
// themselves, left-justified.  Bits beyond size are discarded.
func MakeBits(size byte, data uint32) Bits {
	assert.Assertf(size <= MaxBits, "size %d > MaxBits %d", size, MaxBits)
	if size == 0 {
		return Bits{}
	}
	return Bits{data: data &^ (^uint32(0) >> size), size: size}
}

// ByteBits returns the 8-bit literal representation of b.
func ByteBits(b byte) Bits {
	return Bits{data: uint32(b) << 24, size: 8}
}

// Len returns the number of valid bits.
func (b Bits) Len() byte {
	return b.size
}

// Data returns the bits, left-justified.
func (b Bits) Data() uint32 {
	return b.data
}

// Value returns the bits right-justified, i.e. the last bit is the least
// significant bit of the result.
func (b Bits) Value() uint32 {
	if b.size == 0 {
		return 0
	}
	return b.data >> (MaxBits - b.size)
}

// Bit returns the i'th bit, counting from 0.
func (b Bits) Bit(i byte) bool {
	assert.Assertf(i < b.size, "bit index %d out of range [0..%d)", i, b.size)
	return b.data&(uint32(1)<<(MaxBits-1-i)) != 0
}

// Append returns a copy of b with one more bit at the end.  Appending to a
// full Bits is a programming error.
func (b Bits) Append(bit bool) Bits {
	assert.Assertf(b.size < MaxBits, "cannot append to Bits holding %d bits", b.size)
	if bit {
		b.data |= uint32(1) << (MaxBits - 1 - b.size)
	}
	b.size++
	return b
}

// IsPrefixOf returns true iff b is a (not necessarily proper) prefix of other.
func (b Bits) IsPrefixOf(other Bits) bool {
	if b.size > other.size {
		return false
	}
	return MakeBits(b.size, other.data) == b
}

// String returns the string representation of this Bits.
func (b Bits) String() string {
	if b.size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(b.size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, b.Value()))
}

var _ fmt.Stringer = Bits{}
