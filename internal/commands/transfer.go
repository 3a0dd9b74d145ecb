package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/config"
)

func newExportCommand(planPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as a versioned JSON envelope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.Load(*planPath)
			if err != nil {
				return err
			}
			if err := config.Export(out, doc, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported plan to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "flowcast-export.json", "output file")
	return cmd
}

func newImportCommand(planPath *string) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON envelope, replacing the plan file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.Import(in)
			if err != nil {
				return err
			}
			if err := config.Save(*planPath, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", in, *planPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "envelope file to import (required)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
