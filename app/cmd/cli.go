package cmd

import (
	"context"

	"github.com/josuecastillodev/ecommerce/app/configs"
	"github.com/josuecastillodev/ecommerce/app/db/seeders"
	"github.com/josuecastillodev/ecommerce/app/models/migrations"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewCli(env configs.ENV, logger *zap.Logger) *cli.Command {
	connect := func() (*gorm.DB, error) {
		return configs.OpenConnection(env, logger)
	}

	return &cli.Command{
		Name:  "catalog",
		Usage: "Category and brand catalog service",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logger.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Migrate and load demo brands and categories",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db, logger); err != nil {
						return err
					}
					logger.Info("seed complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate a new ADMIN_API_TOKEN for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintAdminToken(); err != nil {
						return err
					}
					logger.Info("key generation complete, copy the token to your .env file")
					return nil
				},
			},
		},
	}
}

func RunCli(ctx context.Context, env configs.ENV, logger *zap.Logger, args []string) error {
	return NewCli(env, logger).Run(ctx, args)
}
