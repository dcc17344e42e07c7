package pnm

import (
	"fmt"
	"math"
)

// Diff returns the root mean square difference between two rasters, with
// each channel first normalized by its raster's denominator. Dimensions may
// differ by at most one (a codec may drop a trailing odd row or column);
// only the overlapping region is compared.
func Diff(a, b Raster) (float64, error) {
	if abs(a.Width()-b.Width()) > 1 || abs(a.Height()-b.Height()) > 1 {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			a.Width(), a.Height(), b.Width(), b.Height())
	}
	width, height := min(a.Width(), b.Width()), min(a.Height(), b.Height())
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("%w: empty overlap", ErrSizeMismatch)
	}

	da, db := float64(a.Denominator()), float64(b.Denominator())
	var sum float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ca, cb := a.RGBAt(x, y), b.RGBAt(x, y)
			dr := float64(ca.R)/da - float64(cb.R)/db
			dg := float64(ca.G)/da - float64(cb.G)/db
			dbl := float64(ca.B)/da - float64(cb.B)/db
			sum += dr*dr + dg*dg + dbl*dbl
		}
	}
	return math.Sqrt(sum / float64(3*width*height)), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
