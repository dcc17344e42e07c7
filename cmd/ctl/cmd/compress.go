package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/arith.go/pkg/compress/arith"
	"github.com/jpfielding/arith.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewCompressCmd compresses an image into the codeword format
func NewCompressCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress [file]",
		Short: "compress a PPM/PNG/JPEG image",
		Long:  "Compresses an image (optionally gzip or zstd wrapped) into one 32-bit codeword per 2x2 block. A trailing odd row or column is dropped.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			workers, _ := cmd.Flags().GetInt("workers")
			if len(args) > 0 {
				in = args[0]
			}

			img, err := loadImage(in)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			w, err := util.CreateOutput(out)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := arith.Encode(ctx, w, img, &arith.Options{Workers: workers}); err != nil {
				return fmt.Errorf("failed to compress: %w", err)
			}
			slog.InfoContext(ctx, "compressed",
				"in", in, "out", out,
				"width", img.Width()&^1, "height", img.Height()&^1,
				"denominator", img.Denominator())
			return w.Close()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "-", "input image path (- for stdin)")
	pf.StringP("out", "o", "-", "output path (- for stdout)")
	pf.IntP("workers", "w", 1, "goroutines transforming blocks")
	return cmd
}
