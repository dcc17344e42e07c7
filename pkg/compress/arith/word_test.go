package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack_Layout(t *testing.T) {
	tests := []struct {
		name string
		f    Fields
		want uint32
	}{
		{"zero", Fields{}, 0},
		{"a only", Fields{A: 511}, 0xff800000},
		{"pr only", Fields{Pr: 15}, 0x0000000f},
		{"pb only", Fields{Pb: 15}, 0x000000f0},
		{"mixed", Fields{A: 511, B: -1, D: 15, Pr: 15}, 0xfffc0f0f},
		{"small", Fields{A: 1, B: 1, C: 2, D: -15, Pb: 3, Pr: 4}, 0x00845134},
		{"red", Fields{A: 153, Pb: 5, Pr: 15}, 0x4c80005f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pack(tt.f))
			assert.Equal(t, tt.f, Unpack(tt.want))
		})
	}
}

func TestPack_Bijective(t *testing.T) {
	for _, a := range []uint16{0, 1, 255, 511} {
		for b := int8(-15); b <= 15; b++ {
			for c := int8(-15); c <= 15; c++ {
				for d := int8(-15); d <= 15; d++ {
					for _, chroma := range [][2]uint8{{0, 15}, {7, 7}, {15, 0}} {
						f := Fields{A: a, B: b, C: c, D: d, Pb: chroma[0], Pr: chroma[1]}
						if got := Unpack(Pack(f)); got != f {
							t.Fatalf("Unpack(Pack(%+v)) = %+v", f, got)
						}
					}
				}
			}
		}
	}
}

func TestPack_Overflow(t *testing.T) {
	assert.Panics(t, func() { Pack(Fields{A: 512}) })
	assert.Panics(t, func() { Pack(Fields{B: 16}) })
	assert.Panics(t, func() { Pack(Fields{D: -17}) })
	assert.Panics(t, func() { Pack(Fields{Pb: 16}) })
}
