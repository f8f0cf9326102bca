package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mudaeroll/internal/domain"
)

// history: dump recent channel traffic, oldest first. Useful for checking
// the configured bot identity and channel before launching sessions.
func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent channel messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			printed := 0
			err := wire.Client.History(cmd.Context(), "", 100, func(page []domain.Message) bool {
				for _, m := range page {
					marker := " "
					if len(m.Embeds) > 0 {
						marker = "*"
					}
					fmt.Printf("%s %s  %-20s %s\n",
						marker, m.Timestamp.Format("2006-01-02 15:04:05"), m.Author.Username, m.Content)
					printed++
					if printed >= limit {
						return false
					}
				}
				return true
			})
			if err != nil {
				return err
			}
			fmt.Printf("%d messages (* = has embeds)\n", printed)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum messages to print")
	return cmd
}
