package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/djkazic/nockchain/internal/zkvm/core"
)

func NewBenchCommand() *cobra.Command {
	var (
		size  int
		iters int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the transform and hash hot paths",
		Long: `Run the forward transform, inverse transform and sponge hash over a
synthetic input and report wall-clock time per call. A quick sanity check
for platform regressions, not a rigorous benchmark.`,
		Example: `  # Defaults: length 4096, 16 iterations
  nockchain-kernel bench

  # Larger domain
  nockchain-kernel bench --size 65536 --iters 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 || size&(size-1) != 0 {
				return fmt.Errorf("size %d is not a power of two", size)
			}
			if iters <= 0 {
				return fmt.Errorf("iters must be positive")
			}

			p := make(core.BPoly, size)
			for i := range p {
				p[i] = core.NewBelt(uint64(i)*6364136223846793005 + 1)
			}

			bold := color.New(color.Bold)
			bold.Printf("size %d, %d iterations\n", size, iters)

			start := time.Now()
			var evals core.BPoly
			for i := 0; i < iters; i++ {
				var err error
				evals, err = p.FFT()
				if err != nil {
					return err
				}
			}
			fmt.Printf("  fft          %v/op\n", time.Since(start)/time.Duration(iters))

			start = time.Now()
			for i := 0; i < iters; i++ {
				if _, err := evals.IFFT(); err != nil {
					return err
				}
			}
			fmt.Printf("  ifft         %v/op\n", time.Since(start)/time.Duration(iters))

			start = time.Now()
			for i := 0; i < iters; i++ {
				if _, err := core.HashVarlen(p); err != nil {
					return err
				}
			}
			fmt.Printf("  hash_varlen  %v/op\n", time.Since(start)/time.Duration(iters))

			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 4096, "Input length, a power of two")
	cmd.Flags().IntVar(&iters, "iters", 16, "Iterations per operation")

	return cmd
}
