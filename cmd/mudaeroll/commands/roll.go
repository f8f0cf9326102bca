package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mudaeroll/internal/domain"
)

// roll: run one session without the dashboard.
func rollCmd() *cobra.Command {
	var (
		rolls  int
		boosts int
		slash  bool
		pOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Run a single roll session headlessly",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rolls < 0 || boosts < 0 {
				return fmt.Errorf("rolls and boosts must not be negative")
			}
			mode := domain.ReactPreferredOrdered
			if pOnly {
				mode = domain.ReactPreferredOnly
			}
			plan := domain.RollPlan{
				RollCount:        rolls,
				BoostCount:       boosts,
				UseSlashCommands: slash,
				ReactionMode:     mode,
			}

			if !wire.Launcher.Launch(plan) {
				return fmt.Errorf("a session is already running")
			}
			wire.Launcher.Wait()

			summary, ok := wire.Launcher.LastSummary()
			if !ok {
				return fmt.Errorf("session failed; see log output")
			}
			title := summary.LastCardTitle
			if title == "" {
				title = "-"
			}
			fmt.Printf("messages sent: %d\n", summary.MessagesSent)
			fmt.Printf("cards detected: %d\n", summary.CardsDetected)
			fmt.Printf("last card: %s\n", title)
			fmt.Printf("duration: %.1fs\n", summary.Duration.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&rolls, "rolls", 0, "plain rolls to send before boosts")
	cmd.Flags().IntVar(&boosts, "boosts", 0, "boost uses to consume")
	cmd.Flags().BoolVar(&slash, "slash", false, "roll via slash commands (enables kakera reactions)")
	cmd.Flags().BoolVar(&pOnly, "p-only", false, "react only to the kakeraP button")
	return cmd
}
