package main

import (
	"fmt"
	"os"

	"github.com/k1ngsterr1/quick-notes/internal/cli"
	"github.com/k1ngsterr1/quick-notes/internal/config"
	"github.com/k1ngsterr1/quick-notes/internal/database"
	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/logger"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	store := kv.NewGormStore(dbManager.DB())
	app := &cli.App{
		Records: services.NewRecordService(store,
			services.WithAgeFormatter(services.AgeFormatter{Layout: appConfig.DateLayout, Location: appConfig.DisplayTZ}),
			services.WithAudit(services.NewAuditService()),
		),
		Settings:  services.NewSettingsService(store),
		JWTSecret: appConfig.JWTSecret,
		TokenTTL:  appConfig.JWTExpirationDur,
	}

	return cli.NewRootCmd(app).Execute()
}
