// Package commands contains the modelgen CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"modelgen/internal/config"
	"modelgen/internal/logger"
)

// options is shared by every command through the root's persistent flags.
type options struct {
	configPath string
	verbose    int
	logJSON    bool

	cfg *config.Config
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "modelgen",
		Short: "Resolve Java types, imports and paths for a model schema",
		Long: `modelgen maps a YAML model schema onto Java: type names, packages,
imports and output paths for every entity. Resolution problems are
reported per entity so that a single run shows all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: nearest modelgen.toml or modelgen.yaml)")
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (-v, -vv)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(
		newResolveCmd(opts),
		newCheckCmd(opts),
		newPathsCmd(opts),
		newInitCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	o.cfg = cfg

	if err := logger.Initialize(max(cfg.Log.Verbosity, o.verbose), cfg.Log.JSON || o.logJSON); err != nil {
		return err
	}

	logger.Logger.Debugw("configuration loaded", "source", cfg.Source)

	return nil
}

// skipConfig replaces the root's pre-run for commands that work without a
// valid configuration.
func skipConfig(*cobra.Command, []string) error {
	return nil
}
