package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/config"
	"github.com/flowcast-dev/flowcast/internal/engine"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/report"
)

func newMonthCommand(planPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Project a single month's daily ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := loadPlan(*planPath)
			if err != nil {
				return err
			}
			res := engine.Simulate(plan)
			report.Month(cmd.OutOrStdout(), plan.Settings.Year, plan.Settings.Month, res)
			return nil
		},
	}
}

func newHorizonCommand(planPath *string) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "horizon",
		Short: "Project a chained multi-month horizon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if months < 1 {
				return fmt.Errorf("--months must be at least 1")
			}
			plan, err := loadPlan(*planPath)
			if err != nil {
				return err
			}
			res := engine.SimulateHorizon(plan, months)
			report.Horizon(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 18, "number of months to project")
	return cmd
}

func newCheckCommand(planPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the plan file and report coercions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.Load(*planPath)
			if err != nil {
				return err
			}
			_, warns := config.Normalize(doc)
			if len(warns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Plan is clean.")
				return nil
			}
			fatal := 0
			for _, w := range warns {
				fmt.Fprintln(cmd.OutOrStdout(), w.String())
				if w.Fatal {
					fatal++
				}
			}
			if fatal > 0 {
				return fmt.Errorf("%d fatal warning(s)", fatal)
			}
			return nil
		},
	}
}

// loadPlan reads and normalizes a plan file, printing warnings to
// stderr without failing. check is the command that fails on fatal
// warnings.
func loadPlan(path string) (model.Plan, error) {
	doc, err := config.Load(path)
	if err != nil {
		return model.Plan{}, err
	}
	plan, warns := config.Normalize(doc)
	for _, w := range warns {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}
	return plan, nil
}
