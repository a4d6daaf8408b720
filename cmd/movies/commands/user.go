package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/movies/internal/movies/app"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(userCreateCmd(), userCountCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create [username]",
		Short: "Create an account",
		Long:  "Create an account. Without --password the password is read from the first line of stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password required: pass --password or pipe it on stdin")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			// Skip the HTTP server; only the store and services are needed.
			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			if err := application.Accounts().CreateAccount(cmd.Context(), username, password); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin when empty)")
	return cmd
}

func userCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			n, err := application.Accounts().CountAccounts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
			return nil
		},
	}
}
