package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/arith.go/pkg/pnm"
	"github.com/spf13/cobra"
)

// NewDiffCmd reports the RMS difference between two images
func NewDiffCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <image> <image>",
		Short: "root mean square difference between two images",
		Long:  "Prints the RMS difference between two images with channels normalized to [0,1]. Sizes may differ by at most one row and column; at most one input may be stdin (-).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return fmt.Errorf("could not read both inputs from stdin")
			}
			a, err := loadImage(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			b, err := loadImage(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}

			e, err := pnm.Diff(a, b)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "diff", "a", args[0], "b", args[1], "rms", e)
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", e)
			return nil
		},
	}
	return cmd
}
