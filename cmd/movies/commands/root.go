package commands

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/movies/internal/movies/app"
)

var (
	configFile string
	cfg        app.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:           "movies",
		Short:         "Movie lookup service with user accounts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig(configFile)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default $CONFIG_FILE)")

	root.AddCommand(serveCmd(), migrateCmd(), userCmd())
	return root.Execute()
}
