package arith

import (
	"bufio"
	"io"
)

// FieldStats summarizes one quantized field across a stream
type FieldStats struct {
	Min, Max int
	Mean     float64
	sum      int
}

func (s *FieldStats) add(v, n int) {
	if n == 0 || v < s.Min {
		s.Min = v
	}
	if n == 0 || v > s.Max {
		s.Max = v
	}
	s.sum += v
}

// Summary describes a compressed stream without reconstructing pixels
type Summary struct {
	Width, Height int
	Blocks        int
	A, B, C, D    FieldStats
	Pb, Pr        FieldStats
}

// Inspect reads a compressed stream and collects per-field statistics
func Inspect(r io.Reader) (*Summary, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	width, height, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	words, err := readWords(NewWordReader(br), (width/2)*(height/2))
	if err != nil {
		return nil, err
	}

	s := &Summary{Width: width, Height: height, Blocks: len(words)}
	for n, word := range words {
		f := Unpack(word)
		s.A.add(int(f.A), n)
		s.B.add(int(f.B), n)
		s.C.add(int(f.C), n)
		s.D.add(int(f.D), n)
		s.Pb.add(int(f.Pb), n)
		s.Pr.add(int(f.Pr), n)
	}
	if s.Blocks > 0 {
		for _, fs := range []*FieldStats{&s.A, &s.B, &s.C, &s.D, &s.Pb, &s.Pr} {
			fs.Mean = float64(fs.sum) / float64(s.Blocks)
		}
	}
	return s, nil
}
