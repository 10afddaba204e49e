package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/cubecheck/pkg/analyzer"
	"github.com/ccollicutt/cubecheck/pkg/logger"
	"github.com/ccollicutt/cubecheck/pkg/output"
	"github.com/ccollicutt/cubecheck/pkg/parser"
)

// runPass loads the input, runs one analyzer pass over it, and prints the report.
// Nothing reaches stdout unless the whole pass succeeds.
func runPass(cmd *cobra.Command, args []string, opts *GlobalOptions, mode analyzer.Mode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cmd.ErrOrStderr(), logger.Config{Debug: opts.Debug})
	log.Debug("pass.start", "mode", mode, "input", cfg.Input)

	result, err := analyze(ctx, cfg.Input, mode, analyzer.WithLogger(log))
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cfg.Output, output.FormatOptions{Quiet: cfg.Quiet})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, output.NewReport(result), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func analyze(ctx context.Context, input string, mode analyzer.Mode, opts ...analyzer.AnalyzerOption) (*analyzer.Result, error) {
	text, err := parser.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	a, err := analyzer.NewAnalyzer(mode, append(opts, analyzer.WithSourceName(input))...)
	if err != nil {
		return nil, fmt.Errorf("creating analyzer: %w", err)
	}

	return a.Analyze(ctx, parser.NewLineSource(text))
}
