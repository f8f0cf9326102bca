package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mudaeroll/internal/app"
)

var (
	cfgPath string
	verbose bool

	cfg  *app.Config
	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "mudaeroll",
		Short: "Automated roll sessions against the Mudae Discord bot",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			// Config management must work before a config exists.
			if cmd.Name() == "init" || cmd.Name() == "config" {
				return nil
			}

			var err error
			cfg, err = app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if err := app.Validate(cfg); err != nil {
				return err
			}
			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./mudaeroll.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(runCmd(), rollCmd(), historyCmd(), configCmd())
	return root.Execute()
}
