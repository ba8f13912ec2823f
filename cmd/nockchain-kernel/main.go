package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/djkazic/nockchain/internal/cli"
	"github.com/djkazic/nockchain/internal/logger"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nockchain-kernel",
		Short: "Proving kernel primitives for the nockchain zkVM",
		Long: `nockchain-kernel exposes the zkVM proving kernel from the command line:
field and polynomial arithmetic over the 64-bit prime field, number
theoretic transforms, and the sponge hash used for trace commitments.

The same routines back the in-process kernel entry points; the CLI exists
for inspecting values and cross-checking other implementations.`,
		Version: fmt.Sprintf("%s (commit %s)", Version, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewHashCommand(),
		cli.NewFFTCommand(),
		cli.NewBenchCommand(),
	)

	verbose := rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		if !*verbose {
			logger.Disable()
		}
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Logger().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
