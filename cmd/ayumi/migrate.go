package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlesng35/ayumi/internal/database"
	"github.com/charlesng35/ayumi/pkg/logger"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntimeConfig(opts)
			if err != nil {
				return err
			}
			defer logger.Sync() // best effort

			db, err := initialiseDatabase(cfg, true)
			if err != nil {
				return err
			}
			if err := database.Close(db); err != nil {
				return fmt.Errorf("close database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
