// Package cli provides the command-line interface for cubecheck.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/cubecheck/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "cubecheck",
		Short: "Check cube games against fixed color limits",
		Long: `cubecheck reads a file of cube games, one per line:

  Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green

and sums the IDs of the games that never draw more than 12 red,
13 green, or 14 blue cubes. A game's ID is its line number.

Run without a subcommand, it performs the sum on data/inputs/02.txt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunSum(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddGlobalFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewSumCommand(opts))
	rootCmd.AddCommand(commands.NewPowerCommand(opts))
	rootCmd.AddCommand(commands.NewValidateCommand(opts))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
