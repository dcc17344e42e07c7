package arith

import (
	"testing"

	"github.com/jpfielding/arith.go/pkg/pnm"
	"github.com/stretchr/testify/assert"
)

func TestRGBToCV(t *testing.T) {
	cv := RGBToCV(pnm.RGB{R: 255}, 255)
	assert.InDelta(t, 0.299, cv.Y, 1e-9)
	assert.InDelta(t, -0.168736, cv.Pb, 1e-9)
	assert.InDelta(t, 0.5, cv.Pr, 1e-9)

	cv = RGBToCV(pnm.RGB{R: 1, G: 1, B: 1}, 1)
	assert.InDelta(t, 1.0, cv.Y, 1e-9)
	assert.InDelta(t, 0.0, cv.Pb, 1e-9)
	assert.InDelta(t, 0.0, cv.Pr, 1e-9)
}

func TestCVToRGB(t *testing.T) {
	rgb := CVToRGB(CV{Y: 0.299, Pb: -0.168736, Pr: 0.5}, 255)
	assert.Equal(t, pnm.RGB{R: 255, G: 0, B: 0}, rgb)
}

func TestCVToRGB_Clamps(t *testing.T) {
	tests := []struct {
		name string
		cv   CV
		want pnm.RGB
	}{
		{"over white", CV{Y: 1.2}, pnm.RGB{R: 255, G: 255, B: 255}},
		{"under black", CV{Y: -0.1}, pnm.RGB{}},
		{"strong red", CV{Y: 0.5, Pr: 0.5}, pnm.RGB{R: 255, G: 36, B: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CVToRGB(tt.cv, 255))
		})
	}
}

func TestColor_RoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				in := pnm.RGB{R: uint16(r), G: uint16(g), B: uint16(b)}
				out := CVToRGB(RGBToCV(in, 255), 255)
				assert.InDelta(t, r, int(out.R), 1, "red of %v", in)
				assert.InDelta(t, g, int(out.G), 1, "green of %v", in)
				assert.InDelta(t, b, int(out.B), 1, "blue of %v", in)
			}
		}
	}
}

func TestColor_BadDenominator(t *testing.T) {
	assert.Panics(t, func() { RGBToCV(pnm.RGB{}, 0) })
	assert.Panics(t, func() { CVToRGB(CV{}, -1) })
}
