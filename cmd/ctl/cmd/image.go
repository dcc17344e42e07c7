package cmd

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/jpfielding/arith.go/pkg/pnm"
	"github.com/jpfielding/arith.go/pkg/util"
)

// loadImage reads a PPM, PNG or JPEG from path ("-" is stdin)
func loadImage(path string) (*pnm.Pixmap, error) {
	rc, err := util.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	head, _ := br.Peek(1)
	if len(head) == 1 && head[0] == 'P' {
		return pnm.Read(br)
	}
	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return pnm.FromImage(img), nil
}

// writeImage writes pm to w as "ppm" or "png"
func writeImage(w io.Writer, pm *pnm.Pixmap, format string) error {
	switch format {
	case "ppm", "":
		return pnm.Write(w, pm)
	case "png":
		if pm.Denominator() <= 0xff {
			rgba := image.NewRGBA(pm.Bounds())
			draw.Draw(rgba, rgba.Bounds(), pm, image.Point{}, draw.Src)
			return png.Encode(w, rgba)
		}
		return png.Encode(w, pm)
	default:
		return fmt.Errorf("unknown output format %q (ppm|png)", format)
	}
}
