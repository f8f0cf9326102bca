package commands

import (
	"github.com/spf13/cobra"

	"mudaeroll/internal/domain"
	"mudaeroll/internal/tui"
)

// run: open the interactive dashboard.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive roll dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := domain.RollPlan{
				BoostCount:   cfg.Tuning.RollBatchSize / 2,
				ReactionMode: domain.ReactPreferredOrdered,
			}
			return tui.Run(wire.Launcher, plan)
		},
	}
}
