package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/arith.go/pkg/compress/arith"
	"github.com/jpfielding/arith.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewDecompressCmd restores an image from the codeword format
func NewDecompressCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress [file]",
		Short: "decompress to a PPM or PNG image",
		Long:  "Reads a compressed stream and writes the reconstructed image with a denominator of 255.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			format, _ := cmd.Flags().GetString("format")
			workers, _ := cmd.Flags().GetInt("workers")
			if len(args) > 0 {
				in = args[0]
			}

			r, err := util.OpenInput(in)
			if err != nil {
				return err
			}
			defer r.Close()

			pm, err := arith.Decode(ctx, r, &arith.Options{Workers: workers})
			if err != nil {
				return fmt.Errorf("failed to decompress: %w", err)
			}

			w, err := util.CreateOutput(out)
			if err != nil {
				return err
			}
			defer w.Close()
			if err := writeImage(w, pm, format); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}
			slog.InfoContext(ctx, "decompressed",
				"in", in, "out", out, "format", format,
				"width", pm.Width(), "height", pm.Height())
			return w.Close()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "-", "compressed input path (- for stdin)")
	pf.StringP("out", "o", "-", "output path (- for stdout)")
	pf.StringP("format", "f", "ppm", "output format (ppm|png)")
	pf.IntP("workers", "w", 1, "goroutines transforming blocks")
	return cmd
}
