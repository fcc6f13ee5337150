package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"modelgen/internal/gen"
)

type resolveOptions struct {
	format     string
	outputRoot string
	write      string
	mkdirs     bool
}

func newResolveCmd(opts *options) *cobra.Command {
	ro := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <schema>",
		Short: "Print the resolved unit manifest for a schema",
		Long: `Resolve every entity of the schema and print the manifest: class,
package, output path, imports and typed fields per unit. Units that fail to
resolve are listed under diagnostics.`,
		Example: `  # Print the manifest as YAML
  modelgen resolve model.yaml

  # Write JSON and create the package directories
  modelgen resolve model.yaml --format json --write build/manifest.json --mkdirs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, ro, args[0])
		},
	}

	cmd.Flags().StringVarP(&ro.format, "format", "f", gen.FormatYAML, "manifest format: yaml or json")
	cmd.Flags().StringVarP(&ro.outputRoot, "output-root", "o", "", "output root (default: output.root from config)")
	cmd.Flags().StringVarP(&ro.write, "write", "w", "", "write the manifest to this file instead of stdout")
	cmd.Flags().BoolVar(&ro.mkdirs, "mkdirs", false, "create the package directory of every unit")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *options, ro *resolveOptions, schemaPath string) error {
	plan, diags, err := opts.buildPlan(cmd.Context(), schemaPath, ro.outputRoot)
	if err != nil {
		return err
	}

	if plan == nil {
		printDiagnostics(cmd.ErrOrStderr(), diags)
		return failedErr(diags)
	}

	if ro.write != "" {
		if err := gen.WriteManifestFile(ro.write, plan, ro.format); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Manifest with %d unit(s) written to %s", len(plan.Units), ro.write))
	} else if err := gen.WriteManifest(cmd.OutOrStdout(), plan, ro.format); err != nil {
		return err
	}

	if ro.mkdirs {
		if err := gen.WriteUnitDirs(plan); err != nil {
			return err
		}
	}

	return failedErr(diags)
}
