package arith

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Magic is the first line of every compressed stream
const Magic = "COMP40 Compressed image format 2"

// MaxDimension bounds the width and height a header may announce, which
// keeps width*height well inside int range
const MaxDimension = 1 << 20

// WriteHeader writes the text header announcing a width x height image
func WriteHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n", Magic, width, height)
	return err
}

// ReadHeader parses the text header and returns the image dimensions.
// The reader is left positioned on the first codeword.
func ReadHeader(br *bufio.Reader) (width, height int, err error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("%w: failed to read magic: %w", ErrInvalidHeader, err)
	}
	if strings.TrimSuffix(line, "\n") != Magic {
		return 0, 0, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, line)
	}

	line, err = br.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("%w: failed to read dimensions: %w", ErrInvalidHeader, err)
	}
	fields := strings.Split(strings.TrimSuffix(line, "\n"), " ")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 dimensions, got %q", ErrInvalidHeader, line)
	}
	dims := [2]int{}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > MaxDimension {
			return 0, 0, fmt.Errorf("%w: bad dimension %q", ErrInvalidHeader, f)
		}
		dims[i] = v
	}
	width, height = dims[0], dims[1]
	if width%2 != 0 || height%2 != 0 {
		return 0, 0, fmt.Errorf("%w: odd dimensions %dx%d", ErrInvalidHeader, width, height)
	}
	return width, height, nil
}
