package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jpfielding/arith.go/pkg/compress/arith"
	"github.com/jpfielding/arith.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze cobra command
func NewAnalyzeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a compressed stream",
		Long:  "Parses a compressed stream and displays its dimensions, block count, per-field statistics of the quantized codewords and a fingerprint of the stream.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			dumpBlock, _ := cmd.Flags().GetInt("dump-block")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}

			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			return runAnalyze(ctx, cmd.OutOrStdout(), filePath, dumpBlock)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "compressed file path to analyze (- for stdin)")
	pf.Int("dump-block", -1, "Index of a block whose fields and pixels are printed")

	return cmd
}

// runAnalyze summarizes the compressed stream at filePath
func runAnalyze(ctx context.Context, out io.Writer, filePath string, dumpBlock int) error {
	r, err := util.OpenInput(filePath)
	if err != nil {
		return err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	s, err := arith.Inspect(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	fingerprint := util.HashUUID(data)
	slog.DebugContext(ctx, "analyzed", "file", filePath, "bytes", len(data), "fingerprint", fingerprint)

	fmt.Fprintln(out, "=== Stream ===")
	fmt.Fprintf(out, "Width: %d\n", s.Width)
	fmt.Fprintf(out, "Height: %d\n", s.Height)
	fmt.Fprintf(out, "Blocks: %d\n", s.Blocks)
	fmt.Fprintf(out, "Bytes: %d\n", len(data))
	fmt.Fprintf(out, "Fingerprint: %s\n", fingerprint)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Fields ===")
	fields := []struct {
		name  string
		stats arith.FieldStats
	}{
		{"a", s.A}, {"b", s.B}, {"c", s.C}, {"d", s.D}, {"Pb", s.Pb}, {"Pr", s.Pr},
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-2s min=%4d max=%4d mean=%8.3f\n", f.name, f.stats.Min, f.stats.Max, f.stats.Mean)
	}

	if dumpBlock >= 0 {
		if dumpBlock >= s.Blocks {
			return fmt.Errorf("block index %d out of bounds (0-%d)", dumpBlock, s.Blocks-1)
		}
		br := bufio.NewReader(bytes.NewReader(data))
		if _, _, err := arith.ReadHeader(br); err != nil {
			return err
		}
		wr := arith.NewWordReader(br)
		var word uint32
		for wr.Count() <= dumpBlock {
			if word, err = wr.ReadWord(); err != nil {
				return err
			}
		}
		cols := s.Width / 2
		fmt.Fprintln(out)
		fmt.Fprintf(out, "=== Block %d (column %d, row %d) ===\n", dumpBlock, dumpBlock%cols, dumpBlock/cols)
		fmt.Fprintf(out, "Codeword: 0x%08x\n", word)
		fmt.Fprintf(out, "Fields: %+v\n", arith.Unpack(word))
		for i, px := range arith.DecodeBlock(word, arith.OutputDenominator) {
			fmt.Fprintf(out, "Pixel %d: %d %d %d\n", i, px.R, px.G, px.B)
		}
	}
	return nil
}
