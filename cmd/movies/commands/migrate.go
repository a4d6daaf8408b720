package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/movies/internal/movies/app"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := app.Migrate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema at version %d\n", cfg.DatabaseDriver, version)
			return nil
		},
	}
}
