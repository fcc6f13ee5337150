package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"modelgen/internal/config"
	"modelgen/internal/schema"
)

func newInitCmd() *cobra.Command {
	var (
		force      bool
		schemaPath string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default modelgen.toml",
		Example: `  # Create modelgen.toml in the current directory
  modelgen init

  # Also start a schema from the example skeleton
  modelgen init --schema model.yaml`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileNames[0]
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.WriteDefault(path, force); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Wrote %s", path))

			if schemaPath == "" {
				return nil
			}

			if err := schema.WriteFile(schemaPath, schema.Skeleton(), force); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Wrote %s", schemaPath))

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "also write an example schema to this path")

	return cmd
}
