package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/djkazic/nockchain/internal/zkvm/core"
)

func NewHashCommand() *cobra.Command {
	var outputHex bool

	cmd := &cobra.Command{
		Use:   "hash [element...]",
		Short: "Hash field elements with the sponge permutation",
		Long: `Hash a variable-length sequence of field elements and print the
five-element digest. Elements are decimal values below the field prime
18446744069414584321.`,
		Example: `  # Hash three elements
  nockchain-kernel hash 1 2 3

  # Digest lanes in hex
  nockchain-kernel hash --hex 12345`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := make(core.BPoly, len(args))
			for i, arg := range args {
				v, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid element %q: %w", arg, err)
				}
				if !core.Based(v) {
					return fmt.Errorf("element %q is not below the field prime", arg)
				}
				input[i] = core.Belt(v)
			}

			digest, err := core.HashVarlen(input)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Printf("digest (%d elements in):\n", len(input))
			for i, d := range digest {
				if outputHex {
					fmt.Printf("  [%d] %#016x\n", i, uint64(d))
				} else {
					fmt.Printf("  [%d] %d\n", i, uint64(d))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputHex, "hex", false, "Print digest lanes in hexadecimal")

	return cmd
}
