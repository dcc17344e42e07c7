package arith

import (
	"fmt"
	"math"

	"github.com/jpfielding/arith.go/pkg/pnm"
)

// CV is one pixel in component video space: luma Y in [0,1] and the
// chroma differences Pb, Pr in [-0.5,0.5]
type CV struct {
	Y, Pb, Pr float64
}

// RGBToCV converts a pixel whose channels are scaled by denominator into
// component video (ITU-R BT.601 coefficients)
func RGBToCV(p pnm.RGB, denominator int) CV {
	checkDenominator(denominator)
	d := float64(denominator)
	r, g, b := float64(p.R)/d, float64(p.G)/d, float64(p.B)/d

	return CV{
		Y:  clamp(0.299*r+0.587*g+0.114*b, 0, 1),
		Pb: clamp(-0.168736*r-0.331264*g+0.5*b, -0.5, 0.5),
		Pr: clamp(0.5*r-0.418688*g-0.081312*b, -0.5, 0.5),
	}
}

// CVToRGB converts component video back to a pixel scaled by denominator.
// Channels are clamped to [0,1] before scaling since quantization noise can
// push them slightly out of range.
func CVToRGB(cv CV, denominator int) pnm.RGB {
	checkDenominator(denominator)
	r := cv.Y + 1.402*cv.Pr
	g := cv.Y - 0.344136*cv.Pb - 0.714136*cv.Pr
	b := cv.Y + 1.772*cv.Pb

	return pnm.RGB{
		R: scaleChannel(r, denominator),
		G: scaleChannel(g, denominator),
		B: scaleChannel(b, denominator),
	}
}

func scaleChannel(v float64, denominator int) uint16 {
	return uint16(math.Round(clamp(v, 0, 1) * float64(denominator)))
}

func checkDenominator(denominator int) {
	if denominator <= 0 || denominator > math.MaxUint16 {
		panic(fmt.Sprintf("arith: denominator %d out of range", denominator))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
