// Package bitpack reads and writes fixed-width bit fields inside 64-bit
// and 32-bit words.
//
// A field is described by its width in bits and the position of its least
// significant bit (lsb). Signed fields use two's-complement encoding.
// Asking for a field that does not fit in the word, or storing a value that
// does not fit in its field, is a programming error and panics.
package bitpack

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is wrapped by the panic raised when a value does not fit its field
	ErrOverflow = errors.New("bitpack: value does not fit in field")
	// ErrBadField is wrapped by the panic raised for an impossible width/lsb pair
	ErrBadField = errors.New("bitpack: invalid field")
)

const wordBits = 64

// FitsU reports whether n can be represented in width unsigned bits
func FitsU(n uint64, width uint) bool {
	if width >= wordBits {
		return true
	}
	return n>>width == 0
}

// FitsS reports whether n can be represented in width two's-complement bits.
// A zero-width signed field holds nothing, not even zero.
func FitsS(n int64, width uint) bool {
	switch {
	case width == 0:
		return false
	case width >= wordBits:
		return true
	}
	hi := int64(1)<<(width-1) - 1
	lo := -hi - 1
	return n >= lo && n <= hi
}

// GetU extracts the unsigned field of width bits starting at lsb
func GetU(word uint64, width, lsb uint) uint64 {
	checkField(width, lsb, wordBits)
	if width == 0 {
		return 0
	}
	return (word >> lsb) & mask(width)
}

// GetS extracts the field of width bits starting at lsb and sign extends it
func GetS(word uint64, width, lsb uint) int64 {
	v := GetU(word, width, lsb)
	if width == 0 {
		return 0
	}
	shift := wordBits - width
	return int64(v<<shift) >> shift
}

// NewU returns word with the field at (width, lsb) replaced by value
func NewU(word uint64, width, lsb uint, value uint64) uint64 {
	checkField(width, lsb, wordBits)
	if !FitsU(value, width) {
		panic(fmt.Errorf("%w: unsigned %d in %d bits", ErrOverflow, value, width))
	}
	if width == 0 {
		return word
	}
	m := mask(width) << lsb
	return (word &^ m) | (value << lsb)
}

// NewS returns word with the field at (width, lsb) replaced by the
// two's-complement encoding of value
func NewS(word uint64, width, lsb uint, value int64) uint64 {
	checkField(width, lsb, wordBits)
	if !FitsS(value, width) {
		panic(fmt.Errorf("%w: signed %d in %d bits", ErrOverflow, value, width))
	}
	return NewU(word, width, lsb, uint64(value)&mask(width))
}

// GetU32 is GetU restricted to a 32-bit word
func GetU32(word uint32, width, lsb uint) uint32 {
	checkField(width, lsb, 32)
	return uint32(GetU(uint64(word), width, lsb))
}

// GetS32 is GetS restricted to a 32-bit word
func GetS32(word uint32, width, lsb uint) int32 {
	checkField(width, lsb, 32)
	return int32(GetS(uint64(word), width, lsb))
}

// NewU32 is NewU restricted to a 32-bit word
func NewU32(word uint32, width, lsb uint, value uint32) uint32 {
	checkField(width, lsb, 32)
	return uint32(NewU(uint64(word), width, lsb, uint64(value)))
}

// NewS32 is NewS restricted to a 32-bit word
func NewS32(word uint32, width, lsb uint, value int32) uint32 {
	checkField(width, lsb, 32)
	return uint32(NewS(uint64(word), width, lsb, int64(value)))
}

// mask returns width low bits set, width in [1,64]
func mask(width uint) uint64 {
	return ^uint64(0) >> (wordBits - width)
}

func checkField(width, lsb, size uint) {
	if width > size || lsb > size || width+lsb > size {
		panic(fmt.Errorf("%w: width %d at lsb %d in a %d-bit word", ErrBadField, width, lsb, size))
	}
}
