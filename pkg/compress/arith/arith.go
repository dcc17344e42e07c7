// Package arith implements a lossy image codec that stores every 2x2 block
// of pixels in one 32-bit codeword.
//
// Each block is converted to component video, its four luma samples are
// run through a 2x2 Walsh-Hadamard transform, its chroma is averaged, and
// the resulting coefficients are quantized and packed into a codeword.
//
// Stream layout:
//
//	COMP40 Compressed image format 2\n
//	<width> <height>\n
//	codewords, 4 bytes each, most significant byte first
//
// Width and height are the source dimensions rounded down to even numbers.
// Blocks are stored in row-major order: block rows top to bottom, and
// within a row, blocks left to right.
package arith

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jpfielding/arith.go/pkg/pnm"
	"golang.org/x/sync/errgroup"
)

// Common errors
var (
	ErrInvalidHeader = errors.New("arith: invalid header")
	ErrTruncated     = errors.New("arith: truncated stream")
)

// OutputDenominator is the denominator of every decoded image
const OutputDenominator = 255

// Options configures encoding and decoding
type Options struct {
	// Workers is the number of goroutines transforming blocks. The stream
	// is identical for any value.
	Workers int
}

// DefaultOptions returns default codec options
func DefaultOptions() *Options {
	return &Options{
		Workers: 1,
	}
}

// EncodeBlock compresses four pixels, in block index order, to a codeword
func EncodeBlock(px [4]pnm.RGB, denominator int) uint32 {
	var blk Block
	for i, p := range px {
		blk[i] = RGBToCV(p, denominator)
	}
	return Pack(Quantize(ForwardBlock(blk)))
}

// DecodeBlock expands a codeword to four pixels in block index order
func DecodeBlock(word uint32, denominator int) [4]pnm.RGB {
	blk := InverseBlock(Dequantize(Unpack(word)))
	var px [4]pnm.RGB
	for i, cv := range blk {
		px[i] = CVToRGB(cv, denominator)
	}
	return px
}

// Encode writes img as a compressed stream. A trailing odd row or column
// is dropped.
func Encode(ctx context.Context, w io.Writer, img pnm.Raster, opts *Options) error {
	if img == nil {
		panic("arith: nil image")
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	width, height := img.Width()&^1, img.Height()&^1
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("arith: %dx%d exceeds %d pixels per side", width, height, MaxDimension)
	}
	cols, rows := width/2, height/2
	denom := img.Denominator()

	words := make([]uint32, cols*rows)
	err := forEachRow(ctx, rows, opts.Workers, func(by int) {
		for bx := 0; bx < cols; bx++ {
			var px [4]pnm.RGB
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					px[i+2*j] = img.RGBAt(2*bx+i, 2*by+j)
				}
			}
			words[by*cols+bx] = EncodeBlock(px, denom)
		}
	})
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := WriteHeader(bw, width, height); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	ww := NewWordWriter(bw)
	for _, word := range words {
		if err := ww.WriteWord(word); err != nil {
			return fmt.Errorf("failed to write codeword %d: %w", ww.Count(), err)
		}
	}
	slog.DebugContext(ctx, "arith: encoded",
		"width", width, "height", height, "denominator", denom, "blocks", ww.Count())
	return ww.Flush()
}

// Decode reads a compressed stream and reconstructs the image with a
// denominator of OutputDenominator
func Decode(ctx context.Context, r io.Reader, opts *Options) (*pnm.Pixmap, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	width, height, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	cols, rows := width/2, height/2

	words, err := readWords(NewWordReader(br), cols*rows)
	if err != nil {
		return nil, err
	}

	pm := pnm.NewPixmap(width, height, OutputDenominator)
	err = forEachRow(ctx, rows, opts.Workers, func(by int) {
		for bx := 0; bx < cols; bx++ {
			px := DecodeBlock(words[by*cols+bx], OutputDenominator)
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					pm.SetRGB(2*bx+i, 2*by+j, px[i+2*j])
				}
			}
		}
	})
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "arith: decoded", "width", width, "height", height, "blocks", len(words))
	return pm, nil
}

// readWords reads exactly n codewords. The slice grows as words arrive so a
// forged header cannot force a large allocation up front.
func readWords(wr *WordReader, n int) ([]uint32, error) {
	words := make([]uint32, 0, min(n, 1<<16))
	for len(words) < n {
		word, err := wr.ReadWord()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d of %d codewords", ErrTruncated, len(words), n)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read codeword %d: %w", len(words), err)
		}
		words = append(words, word)
	}
	return words, nil
}

// forEachRow calls fn for every block row on at most workers goroutines.
// Rows touch disjoint parts of the output so no locking is needed. Rows not
// yet started when ctx is done are skipped and ctx.Err() is returned.
func forEachRow(ctx context.Context, rows, workers int, fn func(by int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for by := 0; by < rows && gctx.Err() == nil; by++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(by)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
