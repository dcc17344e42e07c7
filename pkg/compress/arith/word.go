package arith

import "github.com/jpfielding/arith.go/pkg/compress/bitpack"

// Codeword layout, bit 31 is the most significant bit.
//
//	a      9 bits  [31:23] unsigned
//	b      5 bits  [22:18] signed
//	c      5 bits  [17:13] signed
//	d      5 bits  [12:8]  signed
//	Pb     4 bits  [7:4]   unsigned chroma index
//	Pr     4 bits  [3:0]   unsigned chroma index
const (
	aWidth, aLSB   = 9, 23
	bWidth, bLSB   = 5, 18
	cWidth, cLSB   = 5, 13
	dWidth, dLSB   = 5, 8
	pbWidth, pbLSB = 4, 4
	prWidth, prLSB = 4, 0
)

// Pack lays the fields of one block out in a 32-bit codeword. A field that
// does not fit its width panics.
func Pack(f Fields) uint32 {
	var word uint32
	word = bitpack.NewU32(word, aWidth, aLSB, uint32(f.A))
	word = bitpack.NewS32(word, bWidth, bLSB, int32(f.B))
	word = bitpack.NewS32(word, cWidth, cLSB, int32(f.C))
	word = bitpack.NewS32(word, dWidth, dLSB, int32(f.D))
	word = bitpack.NewU32(word, pbWidth, pbLSB, uint32(f.Pb))
	word = bitpack.NewU32(word, prWidth, prLSB, uint32(f.Pr))
	return word
}

// Unpack extracts the fields of one block from its codeword
func Unpack(word uint32) Fields {
	return Fields{
		A:  uint16(bitpack.GetU32(word, aWidth, aLSB)),
		B:  int8(bitpack.GetS32(word, bWidth, bLSB)),
		C:  int8(bitpack.GetS32(word, cWidth, cLSB)),
		D:  int8(bitpack.GetS32(word, dWidth, dLSB)),
		Pb: uint8(bitpack.GetU32(word, pbWidth, pbLSB)),
		Pr: uint8(bitpack.GetU32(word, prWidth, prLSB)),
	}
}
