package arith

import "math"

// Quantizer scales. A uses every code of its 9-bit field, B/C/D cover
// [-0.3, 0.3] in steps of 1/50 which needs 5 signed bits.
const (
	aScale   = 511
	bcdScale = 50
	bcdLimit = 0.3
)

// Fields are the quantized Coefficients of one block
type Fields struct {
	A       uint16 // [0, 511]
	B, C, D int8   // [-15, 15]
	Pb, Pr  uint8  // chroma index [0, 15]
}

// QuantizeA maps average luma to a 9-bit code, rounding half away from zero
func QuantizeA(a float64) uint16 {
	return uint16(math.Round(clamp(a, 0, 1) * aScale))
}

// QuantizeBCD maps a luma difference to a code in [-15, 15]
func QuantizeBCD(x float64) int8 {
	return int8(math.Round(clamp(x, -bcdLimit, bcdLimit) * bcdScale))
}

// DequantizeA is the inverse of QuantizeA
func DequantizeA(q uint16) float64 {
	return float64(q) / aScale
}

// DequantizeBCD is the inverse of QuantizeBCD. A 5-bit field can also
// hold -16, which no encoder produces; it decodes to -0.32.
func DequantizeBCD(q int8) float64 {
	return float64(q) / bcdScale
}

// Quantize reduces block coefficients to their fixed-width codes
func Quantize(c Coefficients) Fields {
	return Fields{
		A:  QuantizeA(c.A),
		B:  QuantizeBCD(c.B),
		C:  QuantizeBCD(c.C),
		D:  QuantizeBCD(c.D),
		Pb: IndexOfChroma(c.Pb),
		Pr: IndexOfChroma(c.Pr),
	}
}

// Dequantize expands codes back into approximate coefficients
func Dequantize(f Fields) Coefficients {
	return Coefficients{
		A:  DequantizeA(f.A),
		B:  DequantizeBCD(f.B),
		C:  DequantizeBCD(f.C),
		D:  DequantizeBCD(f.D),
		Pb: ChromaOfIndex(f.Pb),
		Pr: ChromaOfIndex(f.Pr),
	}
}
