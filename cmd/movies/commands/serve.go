package commands

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/movies/internal/movies/app"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	return application.Run()
}
