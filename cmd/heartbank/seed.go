package main

import (
	"context"
	"fmt"

	"heartbank/internal/seed"
	"heartbank/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Sync the deposit categories table",
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

		logger.Info("Connected to database")

		categoryRepo := store.NewCategoryRepository(pool)
		if _, err := seed.SeedCategories(ctx, categoryRepo, logger); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		return nil
	},
}
