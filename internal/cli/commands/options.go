package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/cubecheck/pkg/config"
)

// GlobalOptions holds the persistent flags shared by every pass command.
type GlobalOptions struct {
	ConfigPath string
	Output     string
	Quiet      bool
	Debug      bool
}

// AddGlobalFlags registers the shared flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a YAML run-config")
	flags.StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json)")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the final total")
	flags.BoolVar(&opts.Debug, "debug", false, "Write debug logs to stderr")
}

// resolveConfig loads the run-config and layers the command line over it.
func resolveConfig(cmd *cobra.Command, args []string, opts *GlobalOptions) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context(), opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = opts.Output
	}
	if opts.Quiet {
		cfg.Quiet = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
