package main

import (
	"context"
	"fmt"

	"heartbank/internal/storage"
	"heartbank/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Archive a user's deposits to S3 as JSON",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "user",
			Aliases:  []string{"u"},
			Usage:    "User ID to export",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "bucket",
			Usage: "Destination bucket (defaults to EXPORT_BUCKET)",
		},
	},
	Action: func(cCtx *cli.Context) error {
		cfg, err := loadConfig(cCtx)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg)

		bucket := cCtx.String("bucket")
		if bucket == "" {
			bucket = cfg.ExportBucket
		}
		if bucket == "" {
			return fmt.Errorf("set EXPORT_BUCKET or --bucket")
		}

		ctx := context.Background()

		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		pool, err := connectDatabase(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		userID := cCtx.String("user")

		user, err := store.NewUserRepository(pool).User(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user %s: %w", userID, err)
		}

		deposits, err := store.NewDepositRepository(pool).AllDepositsByUser(ctx, userID)
		if err != nil {
			return err
		}

		exports := storage.NewExportStorage(s3.NewFromConfig(awsConfig), bucket)
		key, err := exports.UploadExport(ctx, user, deposits)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"user_id":  userID,
			"deposits": len(deposits),
			"location": exports.URI(key),
		}).Info("export uploaded")

		return nil
	},
}
