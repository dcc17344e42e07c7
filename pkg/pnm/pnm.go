// Package pnm holds RGB rasters and reads/writes them as portable pixmaps (PPM).
package pnm

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is one pixel; every channel is in [0, denominator] of its raster
type RGB struct {
	R, G, B uint16
}

// Raster is the pixel grid consumed by the codec
type Raster interface {
	Width() int
	Height() int
	Denominator() int
	RGBAt(x, y int) RGB
	SetRGB(x, y int, p RGB)
}

// Pixmap is a dense row-major Raster
type Pixmap struct {
	Pix    []RGB
	width  int
	height int
	denom  int
}

// NewPixmap allocates a black width x height pixmap. A non-positive
// denominator or negative dimension is a programming error.
func NewPixmap(width, height, denominator int) *Pixmap {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pnm: negative dimensions %dx%d", width, height))
	}
	if denominator <= 0 || denominator > 0xffff {
		panic(fmt.Sprintf("pnm: denominator %d out of range", denominator))
	}
	return &Pixmap{
		Pix:    make([]RGB, width*height),
		width:  width,
		height: height,
		denom:  denominator,
	}
}

func (p *Pixmap) Width() int       { return p.width }
func (p *Pixmap) Height() int      { return p.height }
func (p *Pixmap) Denominator() int { return p.denom }

// RGBAt returns the pixel at column x, row y
func (p *Pixmap) RGBAt(x, y int) RGB {
	return p.Pix[p.offset(x, y)]
}

// SetRGB stores the pixel at column x, row y
func (p *Pixmap) SetRGB(x, y int, c RGB) {
	p.Pix[p.offset(x, y)] = c
}

func (p *Pixmap) offset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("pnm: (%d,%d) outside %dx%d", x, y, p.width, p.height))
	}
	return y*p.width + x
}

// ColorModel implements image.Image
func (p *Pixmap) ColorModel() color.Model { return color.RGBA64Model }

// Bounds implements image.Image
func (p *Pixmap) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements image.Image, scaling channels to 16 bits
func (p *Pixmap) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Bounds()) {
		return color.RGBA64{}
	}
	c := p.RGBAt(x, y)
	return color.RGBA64{
		R: p.scale16(c.R),
		G: p.scale16(c.G),
		B: p.scale16(c.B),
		A: 0xffff,
	}
}

func (p *Pixmap) scale16(v uint16) uint16 {
	return uint16((uint32(v)*0xffff + uint32(p.denom)/2) / uint32(p.denom))
}

// FromImage copies any image.Image into a Pixmap. 16-bit sources keep a
// denominator of 65535, everything else is reduced to 255.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	denom := 255
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16, *Pixmap:
		denom = 0xffff
	}
	pm := NewPixmap(b.Dx(), b.Dy(), denom)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if denom == 255 {
				r, g, bl = r>>8, g>>8, bl>>8
			}
			pm.SetRGB(x-b.Min.X, y-b.Min.Y, RGB{R: uint16(r), G: uint16(g), B: uint16(bl)})
		}
	}
	return pm
}
