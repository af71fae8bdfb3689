package main

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/orgs/internal/orgs/app"
)

// DBFlags override the database settings read from the environment.
type DBFlags struct {
	DBDriver    string `name:"db-driver" help:"Database driver (sqlite, postgres). Overrides ORGS_DB_DRIVER."`
	DBPath      string `name:"db-path" help:"SQLite file. Overrides ORGS_DB_PATH."`
	DatabaseURL string `name:"database-url" help:"Postgres connection string. Overrides ORGS_DATABASE_URL."`
}

func (f DBFlags) apply(cfg *app.Config) {
	if f.DBDriver != "" {
		cfg.DBDriver = f.DBDriver
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.DatabaseURL != "" {
		cfg.DatabaseURL = f.DatabaseURL
	}
}

func loadConfig(db DBFlags, extra func(*app.Config)) (app.Config, error) {
	var cfg app.Config
	if err := app.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	db.apply(&cfg)
	if extra != nil {
		extra(&cfg)
	}
	return cfg, cfg.Validate()
}

type ServeCmd struct {
	DBFlags `embed:""`

	Addr string `help:"Listen address. Overrides ORGS_ADDR."`
}

func (c *ServeCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig(c.DBFlags, func(cfg *app.Config) {
		if c.Addr != "" {
			cfg.Addr = c.Addr
		}
	})
	if err != nil {
		return err
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(ctx)
}

type MigrateCmd struct {
	DBFlags `embed:""`
}

func (c *MigrateCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig(c.DBFlags, nil)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg)

	db, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("database migrations applied", "driver", cfg.DBDriver)
	return nil
}

type VersionCmd struct{}

func (VersionCmd) Run() error {
	fmt.Println(app.BuildVersion)
	return nil
}
