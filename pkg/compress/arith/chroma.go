package arith

import (
	"fmt"
	"math"
)

// ChromaLevels is the number of representable averaged chroma values
const ChromaLevels = 16

// chromaTable holds the representative chroma for each 4-bit index,
// evenly spaced over [-0.5, 0.5] so both extremes are exact
var chromaTable = func() [ChromaLevels]float64 {
	var t [ChromaLevels]float64
	for i := range t {
		t[i] = -0.5 + float64(i)/(ChromaLevels-1)
	}
	return t
}()

// IndexOfChroma returns the index of the representative nearest to x.
// Values outside [-0.5, 0.5] map to the nearest extreme.
func IndexOfChroma(x float64) uint8 {
	i := math.Round((clamp(x, -0.5, 0.5) + 0.5) * (ChromaLevels - 1))
	return uint8(i)
}

// ChromaOfIndex returns the representative chroma for a 4-bit index
func ChromaOfIndex(i uint8) float64 {
	if int(i) >= ChromaLevels {
		panic(fmt.Sprintf("arith: chroma index %d out of range", i))
	}
	return chromaTable[i]
}
