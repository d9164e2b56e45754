package main

import (
	"context"
	"fmt"

	"heartbank/internal/db"

	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Apply pending database migrations",
	Action: func(cCtx *cli.Context) error {
		cfg, err := loadConfig(cCtx)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg)

		ctx := context.Background()

		pool, err := connectDatabase(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		applied, err := db.ApplyMigrations(ctx, pool, logger)
		if err != nil {
			return err
		}

		logger.WithField("applied", applied).Info("migrations complete")
		return nil
	},
}
