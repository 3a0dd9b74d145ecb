package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/config"
)

func newInitCommand() *cobra.Command {
	var year, month int
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a sample plan file to get started",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, year, month, force)
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&year, "year", now.Year(), "starting year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "starting month (1-12)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing plan file")

	return cmd
}

func runInit(dir string, year, month int, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, "flowcast.yaml")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	doc := config.Default(year, month)
	if err := config.Save(path, doc); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}

	fmt.Printf("Wrote sample plan to %s\n", path)
	return nil
}
