package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"rescueops/internal/components"
	"rescueops/internal/config"
	"rescueops/internal/storage/postgres"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			logger := components.SetupLogger(cfg.Env)

			cfg.Postgres.AutoMigrate = true
			pg, err := postgres.NewPostgres(ctx, cfg, logger)
			if err != nil {
				logger.Error("migration failed", slog.Any("error", err))
				return err
			}
			pg.Close()

			logger.Info("migrations applied")
			return nil
		},
	}
}
