package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/cubecheck/pkg/analyzer"
)

// NewSumCommand creates the sum command.
func NewSumCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [input-file]",
		Short: "Sum the IDs of games possible within the cube limits",
		Long: `Sum the IDs of every game whose draws never exceed the cube limits
(12 red, 13 green, 14 blue).

Each possible game is printed with its tokens, followed by the total.
A game's ID is its line number. Reading stops at the first blank line.
Any malformed line or color without a limit aborts the run.

Example:
  cubecheck sum
  cubecheck sum data/inputs/02.txt
  cubecheck sum -q -o json games.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSum(cmd, args, opts)
		},
	}
}

// RunSum runs the feasibility pass.
func RunSum(cmd *cobra.Command, args []string, opts *GlobalOptions) error {
	return runPass(cmd, args, opts, analyzer.ModeFeasible)
}
