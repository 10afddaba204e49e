package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/cubecheck/pkg/analyzer"
)

// NewPowerCommand creates the power command.
func NewPowerCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "power [input-file]",
		Short: "Sum the power of the fewest cubes each game needs",
		Long: `For every game, find the largest count drawn of each color. The product
of those counts is the game's power. Prints each game's power and the total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(cmd, args, opts, analyzer.ModePower)
		},
	}
}
