// Package main provides the entry point for the goquill CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version  = "0.3.0"
	globalDB string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "goquill",
		Short:   "Entity mention scanner for fiction manuscripts",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&globalDB, "db", "goquill.db", "SQLite database path")

	rootCmd.AddCommand(
		newEntitiesCmd(),
		newDocsCmd(),
		newScanCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
