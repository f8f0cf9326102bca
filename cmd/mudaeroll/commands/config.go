package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mudaeroll/internal/app"
)

// config init [path]: write a sample configuration file.
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mudaeroll configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mudaeroll.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := app.InitConfig(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(initCmd)
	return cmd
}
