package main

import (
	"context"
	"fmt"
	"os"

	"github.com/k1ngsterr1/quick-notes/internal/config"
	"github.com/k1ngsterr1/quick-notes/internal/database"
	"github.com/k1ngsterr1/quick-notes/internal/kv"
	"github.com/k1ngsterr1/quick-notes/internal/logger"
	"github.com/k1ngsterr1/quick-notes/internal/server"
	"github.com/k1ngsterr1/quick-notes/internal/services"
	"github.com/k1ngsterr1/quick-notes/internal/validator"
)

// @title           Quick Notes API
// @version         1.0
// @description     Quick Notes is a trading journal: notes, formulas and long/short trades with PnL statistics.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a device token. Only enforced when JWT_SECRET is set.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

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
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	store := kv.NewGormStore(dbManager.DB())
	recordService := services.NewRecordService(store,
		services.WithAgeFormatter(services.AgeFormatter{Layout: appConfig.DateLayout, Location: appConfig.DisplayTZ}),
		services.WithAudit(services.NewAuditService()),
	)
	settingsService := services.NewSettingsService(store)

	records, err := recordService.Initialize(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize records: %w", err)
	}
	log.Infof("Loaded %d records", len(records))

	validator.Register()

	router := server.NewRouter(server.Deps{
		Records:   recordService,
		Settings:  settingsService,
		JWTSecret: appConfig.JWTSecret,
	})

	if appConfig.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set; the API accepts unauthenticated requests")
	}
	log.Infof("Starting Quick Notes server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
