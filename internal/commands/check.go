package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"modelgen/internal/logger"
	"modelgen/internal/watch"
)

func newCheckCmd(opts *options) *cobra.Command {
	var (
		watchMode bool
		debounce  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check <schema>",
		Short: "Validate a schema and report every resolution problem",
		Example: `  # Check once
  modelgen check model.yaml

  # Re-check whenever the schema or config changes
  modelgen check model.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watchMode {
				return runCheck(cmd, opts, args[0])
			}

			return runCheckWatch(cmd, opts, args[0], debounce)
		},
	}

	cmd.Flags().BoolVar(&watchMode, "watch", false, "re-run on every change to the schema or config file")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-running in watch mode")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *options, schemaPath string) error {
	plan, diags, err := opts.buildPlan(cmd.Context(), schemaPath, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printDiagnostics(out, diags)

	if diags.HasErrors() {
		return failedErr(diags)
	}

	fmt.Fprint(out, pterm.Success.Sprintfln("%s: %d unit(s) resolved, %d warning(s)",
		schemaPath, len(plan.Units), len(diags.Warnings)))

	return nil
}

func runCheckWatch(cmd *cobra.Command, opts *options, schemaPath string, debounce time.Duration) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rerun := make(chan struct{}, 1)

	paths := []string{schemaPath}
	if opts.cfg.Source != "" {
		paths = append(paths, opts.cfg.Source)
	}

	w, err := watch.New(paths, debounce, func() {
		select {
		case rerun <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Logger.Errorw("watcher stopped", "error", err)
		}
	}()

	for {
		if err := opts.reload(); err != nil {
			fmt.Fprint(cmd.OutOrStdout(), pterm.Error.Sprintln(err.Error()))
		} else if err := runCheck(cmd, opts, schemaPath); err != nil {
			logger.Logger.Debugw("check failed", "error", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), pterm.Info.Sprintln("Watching for changes, press Ctrl+C to stop"))

		select {
		case <-ctx.Done():
			return nil
		case <-rerun:
		}
	}
}

// reload re-reads the configuration file that was used at startup.
func (o *options) reload() error {
	if o.cfg != nil && o.cfg.Source != "" {
		o.configPath = o.cfg.Source
	}

	return o.load()
}
