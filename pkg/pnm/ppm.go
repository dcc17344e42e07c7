package pnm

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/spakin/netpbm"
	"github.com/spakin/netpbm/npcolor"
)

// Common errors
var (
	ErrInvalidFormat = errors.New("pnm: invalid format")
	ErrSizeMismatch  = errors.New("pnm: image sizes differ")
)

// Read decodes a plain (P3) or raw (P6) pixmap, keeping its maxval as the
// denominator
func Read(r io.Reader) (*Pixmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pixmap: %w", err)
	}
	if len(data) < 2 || data[0] != 'P' || (data[1] != '3' && data[1] != '6') {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidFormat, data[:min(len(data), 2)])
	}

	cfg, err := netpbm.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	// every pixel takes at least three bytes in either encoding, so the
	// announced size is checked against the input before anything is allocated
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 || width > math.MaxInt/3/height {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFormat, width, height)
	}
	if len(data) < width*height*3 {
		return nil, fmt.Errorf("%w: %dx%d raster needs more than %d bytes", ErrInvalidFormat, width, height, len(data))
	}

	img, err := netpbm.Decode(bytes.NewReader(data), &netpbm.DecodeOptions{
		Target: netpbm.PPM,
		Exact:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return fromNetpbm(img)
}

func fromNetpbm(img netpbm.Image) (*Pixmap, error) {
	b := img.Bounds()
	maxval := int(img.MaxValue())
	if maxval <= 0 {
		return nil, fmt.Errorf("%w: maxval %d", ErrInvalidFormat, maxval)
	}
	pm := NewPixmap(b.Dx(), b.Dy(), maxval)
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			var c RGB
			switch src := img.(type) {
			case *netpbm.RGBM:
				p := src.RGBMAt(b.Min.X+x, b.Min.Y+y)
				c = RGB{R: uint16(p.R), G: uint16(p.G), B: uint16(p.B)}
			case *netpbm.RGBM64:
				p := src.RGBM64At(b.Min.X+x, b.Min.Y+y)
				c = RGB{R: p.R, G: p.G, B: p.B}
			default:
				return nil, fmt.Errorf("%w: unexpected %T", ErrInvalidFormat, img)
			}
			if int(max(c.R, c.G, c.B)) > maxval {
				return nil, fmt.Errorf("%w: sample at (%d,%d) exceeds maxval %d", ErrInvalidFormat, x, y, maxval)
			}
			pm.SetRGB(x, y, c)
		}
	}
	return pm, nil
}

// Write encodes a raster as a raw (P6) pixmap with its denominator as maxval
func Write(w io.Writer, img Raster) error {
	width, height, denom := img.Width(), img.Height(), img.Denominator()
	rect := image.Rect(0, 0, width, height)

	var out image.Image
	if denom <= 0xff {
		m := netpbm.NewRGBM(rect, uint8(denom))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := img.RGBAt(x, y)
				m.SetRGBM(x, y, npcolor.RGBM{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), M: uint8(denom)})
			}
		}
		out = m
	} else {
		m := netpbm.NewRGBM64(rect, uint16(denom))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := img.RGBAt(x, y)
				m.SetRGBM64(x, y, npcolor.RGBM64{R: c.R, G: c.G, B: c.B, M: uint16(denom)})
			}
		}
		out = m
	}
	return netpbm.Encode(w, out, &netpbm.EncodeOptions{
		Format:   netpbm.PPM,
		MaxValue: uint16(denom),
	})
}
