package arith

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lumaBlock(ys ...float64) Block {
	var blk Block
	for i, y := range ys {
		blk[i].Y = y
	}
	return blk
}

func TestForwardBlock(t *testing.T) {
	c := ForwardBlock(lumaBlock(0.25, 0.5, 0.75, 1.0))
	assert.Equal(t, 0.625, c.A)
	assert.Equal(t, 0.125, c.B)
	assert.Equal(t, 0.25, c.C)
	assert.Equal(t, 0.0, c.D)
}

func TestForwardBlock_AveragesChroma(t *testing.T) {
	blk := Block{
		{Pb: 0.1, Pr: -0.4},
		{Pb: 0.2, Pr: -0.2},
		{Pb: 0.3, Pr: 0.2},
		{Pb: 0.4, Pr: 0.4},
	}
	c := ForwardBlock(blk)
	assert.InDelta(t, 0.25, c.Pb, 1e-12)
	assert.InDelta(t, 0.0, c.Pr, 1e-12)
}

func TestInverseBlock(t *testing.T) {
	blk := InverseBlock(Coefficients{A: 0.625, B: 0.125, C: 0.25, Pb: 0.1, Pr: -0.1})
	for i, want := range []float64{0.25, 0.5, 0.75, 1.0} {
		assert.Equal(t, want, blk[i].Y, "sample %d", i)
		assert.Equal(t, 0.1, blk[i].Pb)
		assert.Equal(t, -0.1, blk[i].Pr)
	}
}

func TestInverseBlock_ClampsNegativeLuma(t *testing.T) {
	blk := InverseBlock(Coefficients{B: 0.1})
	assert.Equal(t, 0.0, blk[0].Y)
	assert.InDelta(t, 0.1, blk[1].Y, 1e-12)
	assert.Equal(t, 0.0, blk[2].Y)
	assert.InDelta(t, 0.1, blk[3].Y, 1e-12)
}

func TestBlock_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for n := 0; n < 1000; n++ {
		in := lumaBlock(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
		out := InverseBlock(ForwardBlock(in))
		for i := range in {
			assert.InDelta(t, in[i].Y, out[i].Y, 1e-12)
		}
	}
}

func TestBlock_IndexOrder(t *testing.T) {
	// brighter right column shows up in B, brighter bottom row in C
	right := ForwardBlock(lumaBlock(0, 1, 0, 1))
	assert.Equal(t, 0.5, right.B)
	assert.Equal(t, 0.0, right.C)
	assert.Equal(t, 0.0, right.D)

	bottom := ForwardBlock(lumaBlock(0, 0, 1, 1))
	assert.Equal(t, 0.0, bottom.B)
	assert.Equal(t, 0.5, bottom.C)

	diagonal := ForwardBlock(lumaBlock(1, 0, 0, 1))
	assert.Equal(t, 0.5, diagonal.D)
}
