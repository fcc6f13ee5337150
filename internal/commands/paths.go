package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"modelgen/internal/gen"
)

func newPathsCmd(opts *options) *cobra.Command {
	var (
		outputRoot string
		buildOrder bool
	)

	cmd := &cobra.Command{
		Use:   "paths <schema>",
		Short: "Show where every unit of a schema is written",
		Example: `  # Table of classes and output files
  modelgen paths model.yaml

  # Referenced classes first
  modelgen paths model.yaml --build-order`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, diags, err := opts.buildPlan(cmd.Context(), args[0], outputRoot)
			if err != nil {
				return err
			}

			if plan == nil {
				printDiagnostics(cmd.ErrOrStderr(), diags)
				return failedErr(diags)
			}

			units := plan.Units

			if buildOrder {
				var cerr *gen.CycleError

				units, err = plan.BuildOrder()
				if errors.As(err, &cerr) {
					fmt.Fprint(cmd.ErrOrStderr(), pterm.Warning.Sprintln(err.Error()))
				} else if err != nil {
					return err
				}
			}

			if err := renderUnits(cmd, units); err != nil {
				return err
			}

			printDiagnostics(cmd.ErrOrStderr(), diags)

			return failedErr(diags)
		},
	}

	cmd.Flags().StringVarP(&outputRoot, "output-root", "o", "", "output root (default: output.root from config)")
	cmd.Flags().BoolVar(&buildOrder, "build-order", false, "list referenced units before the units using them")

	return cmd
}

func renderUnits(cmd *cobra.Command, units []gen.Unit) error {
	if len(units) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No units.")
		return nil
	}

	data := pterm.TableData{{"ENTITY", "CLASS", "PACKAGE", "PATH"}}
	for _, u := range units {
		data = append(data, []string{u.Entity, u.Class, u.Package, u.Path})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering table")
	}

	fmt.Fprintln(cmd.OutOrStdout(), table)

	return nil
}
