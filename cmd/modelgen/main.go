// Package main provides the CLI entrypoint for modelgen.
//
// modelgen maps a YAML model schema onto Java:
//   - Resolves property types through the primitive table or the schema tree
//   - Aggregates deduplicated imports per entity
//   - Computes packages and output paths
//   - Reports every unresolved reference with suggestions
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"

	"modelgen/internal/commands"
	"modelgen/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCmd().ExecuteContext(ctx)

	stop()
	logger.Cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}

		os.Exit(1)
	}
}
