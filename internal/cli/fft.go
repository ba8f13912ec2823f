package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/djkazic/nockchain/internal/zkvm/core"
)

func NewFFTCommand() *cobra.Command {
	var (
		inverse bool
		offset  uint64
	)

	cmd := &cobra.Command{
		Use:   "fft [coefficient...]",
		Short: "Transform a polynomial over the roots of unity",
		Long: `Evaluate a base field polynomial at the canonical roots of unity of
its length, or interpolate evaluations back to coefficients with --inverse.
The number of inputs must be a power of two. With --offset the evaluation
domain is shifted to a multiplicative coset.`,
		Example: `  # Evaluate x^3 + 2x + 5 padded to length 4
  nockchain-kernel fft 5 2 0 1

  # Round the result back
  nockchain-kernel fft --inverse <evaluations>

  # Evaluate over the coset with offset 7
  nockchain-kernel fft --offset 7 5 2 0 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := make(core.BPoly, len(args))
			for i, arg := range args {
				v, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid coefficient %q: %w", arg, err)
				}
				if !core.Based(v) {
					return fmt.Errorf("coefficient %q is not below the field prime", arg)
				}
				p[i] = core.Belt(v)
			}

			var (
				res core.BPoly
				err error
			)
			switch {
			case inverse && offset != 0:
				return fmt.Errorf("--inverse and --offset are mutually exclusive")
			case inverse:
				res, err = p.IFFT()
			case offset != 0:
				if !core.Based(offset) {
					return fmt.Errorf("offset is not below the field prime")
				}
				res, err = p.Coseword(core.Belt(offset), uint32(len(p)))
			default:
				res, err = p.FFT()
			}
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			if inverse {
				bold.Println("coefficients:")
			} else {
				bold.Println("evaluations:")
			}
			for i, v := range res {
				fmt.Printf("  [%d] %d\n", i, uint64(v))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inverse, "inverse", false, "Interpolate evaluations back to coefficients")
	cmd.Flags().Uint64Var(&offset, "offset", 0, "Evaluate over the coset shifted by this element")

	return cmd
}
