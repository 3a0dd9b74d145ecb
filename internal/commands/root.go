// Package commands wires the flowcast CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var planPath string

	rootCmd := &cobra.Command{
		Use:     "flowcast",
		Short:   "Monthly cash-flow projection from a declarative plan",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&planPath, "plan", "flowcast.yaml", "path to the plan file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newMonthCommand(&planPath))
	rootCmd.AddCommand(newHorizonCommand(&planPath))
	rootCmd.AddCommand(newCheckCommand(&planPath))
	rootCmd.AddCommand(newExportCommand(&planPath))
	rootCmd.AddCommand(newImportCommand(&planPath))
	rootCmd.AddCommand(newServeCommand(&planPath))

	return rootCmd
}
