package arith

// Block is one 2x2 group of samples. Sample (i, j), with i the column
// offset and j the row offset inside the block, lives at index i + 2*j:
// top-left, top-right, bottom-left, bottom-right.
type Block [4]CV

// Coefficients are the transformed form of a Block: the average luma A,
// the horizontal (B), vertical (C) and diagonal (D) luma differences, and
// the chroma averaged over all four samples
type Coefficients struct {
	A, B, C, D float64
	Pb, Pr     float64
}

// ForwardBlock applies the 2x2 Walsh-Hadamard transform to the luma of a
// block and averages its chroma
func ForwardBlock(blk Block) Coefficients {
	y0, y1, y2, y3 := blk[0].Y, blk[1].Y, blk[2].Y, blk[3].Y
	return Coefficients{
		A:  (y0 + y1 + y2 + y3) / 4,
		B:  (y1 + y3 - y0 - y2) / 4,
		C:  (y2 + y3 - y0 - y1) / 4,
		D:  (y0 + y3 - y1 - y2) / 4,
		Pb: (blk[0].Pb + blk[1].Pb + blk[2].Pb + blk[3].Pb) / 4,
		Pr: (blk[0].Pr + blk[1].Pr + blk[2].Pr + blk[3].Pr) / 4,
	}
}

// InverseBlock undoes ForwardBlock. Reconstructed luma is clamped to be
// non-negative and every sample receives the block's averaged chroma.
func InverseBlock(c Coefficients) Block {
	ys := [4]float64{
		c.A - c.B - c.C + c.D,
		c.A + c.B - c.C - c.D,
		c.A - c.B + c.C - c.D,
		c.A + c.B + c.C + c.D,
	}
	var blk Block
	for i, y := range ys {
		blk[i] = CV{Y: max(y, 0), Pb: c.Pb, Pr: c.Pr}
	}
	return blk
}
