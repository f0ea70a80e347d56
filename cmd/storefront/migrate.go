package main

import (
	"fmt"
	"log/slog"
	"os"

	"storefront/internal/config"
	"storefront/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing tables and indexes",
		Long: `Apply the embedded schema. Every statement is idempotent, so running
migrate against an up-to-date database is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			db, err := repository.Open(ctx, cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			log.Info("schema applied")
			return nil
		},
	}
}
