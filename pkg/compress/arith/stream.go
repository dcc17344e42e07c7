package arith

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// WordWriter writes codewords most significant byte first
type WordWriter struct {
	w   *bufio.Writer
	buf [4]byte
	n   int // words written
}

// NewWordWriter creates a new codeword writer
func NewWordWriter(w io.Writer) *WordWriter {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &WordWriter{w: bw}
}

// WriteWord writes one codeword
func (ww *WordWriter) WriteWord(word uint32) error {
	binary.BigEndian.PutUint32(ww.buf[:], word)
	if _, err := ww.w.Write(ww.buf[:]); err != nil {
		return err
	}
	ww.n++
	return nil
}

// Count returns the number of codewords written
func (ww *WordWriter) Count() int { return ww.n }

// Flush writes any buffered data to the underlying writer
func (ww *WordWriter) Flush() error {
	return ww.w.Flush()
}

// WordReader reads codewords most significant byte first
type WordReader struct {
	r   *bufio.Reader
	buf [4]byte
	n   int // words read
}

// NewWordReader creates a new codeword reader
func NewWordReader(r io.Reader) *WordReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &WordReader{r: br}
}

// ReadWord reads one codeword. io.EOF is returned only when the stream ends
// exactly on a word boundary; a partial word is ErrTruncated.
func (wr *WordReader) ReadWord() (uint32, error) {
	_, err := io.ReadFull(wr.r, wr.buf[:])
	switch {
	case err == nil:
	case errors.Is(err, io.ErrUnexpectedEOF):
		return 0, fmt.Errorf("%w: partial codeword after %d words", ErrTruncated, wr.n)
	default:
		return 0, err
	}
	wr.n++
	return binary.BigEndian.Uint32(wr.buf[:]), nil
}

// Count returns the number of codewords read
func (wr *WordReader) Count() int { return wr.n }
