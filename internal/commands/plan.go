package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"modelgen/internal/diagnostic"
	"modelgen/internal/gen"
	"modelgen/internal/logger"
	"modelgen/internal/schema"
)

// buildPlan loads, validates and plans a schema. A nil plan with non-nil
// diagnostics means validation failed before planning.
func (o *options) buildPlan(ctx context.Context, schemaPath, outputRoot string) (*gen.Plan, *diagnostic.Diagnostics, error) {
	root, err := schema.LoadTree(schemaPath)
	if err != nil {
		return nil, nil, err
	}

	diags := schema.Validate(root)
	if diags.HasErrors() {
		logger.Logger.Infow("schema validation failed", "schema", schemaPath, "errors", len(diags.Errors))
		return nil, diags, nil
	}

	gc, err := o.cfg.GenConfig()
	if err != nil {
		return nil, nil, err
	}

	if outputRoot == "" {
		outputRoot = o.cfg.Output.Root
	}

	plan, err := gen.NewGenerator(root, gc).Plan(ctx, outputRoot)
	if err != nil {
		return nil, nil, err
	}

	diags.Merge(plan.Diagnostics)
	plan.Diagnostics = diags

	return plan, diags, nil
}

// failedErr summarizes error diagnostics as the command error.
func failedErr(d *diagnostic.Diagnostics) error {
	if d == nil || !d.HasErrors() {
		return nil
	}

	return errors.WithHint(
		errors.Newf("schema has %d error(s)", len(d.Errors)),
		"run 'modelgen check' for details")
}

func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		fmt.Fprint(w, pterm.Error.Sprintln(e.String()))
	}

	for _, warn := range d.Warnings {
		fmt.Fprint(w, pterm.Warning.Sprintln(warn.String()))
	}

	for _, info := range d.Infos {
		fmt.Fprint(w, pterm.Info.Sprintln(info.String()))
	}
}
