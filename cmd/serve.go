package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"closing_table/internal/application"
	"closing_table/internal/config"
	"closing_table/pkg/contextx"
	"closing_table/pkg/logx"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.NewLogger(os.Stdout, cfg.Log.Format, cfg.Log.Level).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx := contextx.WithLogger(cmd.Context(), log)

	log.Info("application starting")

	if err = application.Run(ctx, cfg); err != nil {
		return fmt.Errorf("application.Run: %w", err)
	}

	log.Info("application stopped")

	return nil
}
