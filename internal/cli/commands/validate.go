package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/cubecheck/pkg/analyzer"
	"github.com/ccollicutt/cubecheck/pkg/game"
	"github.com/ccollicutt/cubecheck/pkg/logger"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a games file",
		Long: `Parse a games file without checking any limits.

Checks:
  - Every line has a ':' separator
  - Every count is an integer
  - Counts and colors come in pairs
  - Colors without a limit (warning only)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}
}

func runValidate(cmd *cobra.Command, args []string, opts *GlobalOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n", cfg.Input)

	log := logger.New(cmd.ErrOrStderr(), logger.Config{Debug: opts.Debug})
	result, err := analyze(ctx, cfg.Input, analyzer.ModeValidate, analyzer.WithLogger(log))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nInput valid!\n")
	fmt.Fprintf(w, "  Games:        %d\n", len(result.Games))
	fmt.Fprintf(w, "  Observations: %d\n", result.Total)
	fmt.Fprintf(w, "  Colors:       %v\n", result.Colors)

	// Colors without a limit would abort a sum or power pass
	limits := game.DefaultLimits()
	for _, c := range result.Colors {
		if _, ok := limits.Max(c); !ok {
			fmt.Fprintf(w, "\nWarning: color %q has no limit\n", c)
		}
	}

	return nil
}
