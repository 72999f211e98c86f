// Package main provides the entry point for the rangeset CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baratali/rangeset/cmd/rangeset/commands"
	"github.com/baratali/rangeset/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rangeset",
		Short: "Build, query, and serve a range set from the command line",
		Long: `rangeset is a small demo CLI around the pkg/rangeset library.

Commands:
  build    Replay add/remove operations from a file and print the result
  query    Answer a single membership, enclosure, or span question
  serve    Expose Prometheus metrics for an in-memory range set`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .rangeset.yaml (default: search CWD and $HOME)")

	rootCmd.AddCommand(commands.NewBuildCommand(&configPath))
	rootCmd.AddCommand(commands.NewQueryCommand(&configPath))
	rootCmd.AddCommand(commands.NewServeCommand(&configPath))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "rangeset %s\n", version.String())
		},
	}
}
