package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orders/api"
	"orders/cmd"
	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/core/domain/model/catalog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()

	appLogger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(appLogger)

	if _, err := api.Load(); err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}

	gormDB := mustOpenDB(ctx, configs, appLogger)

	app := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	router, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	startWebServer(ctx, router, configs.HTTPPort, appLogger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.NewConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustOpenDB(ctx context.Context, configs cmd.Config, appLogger *slog.Logger) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if configs.DBAutoMigrate {
		if err = postgres_adapter.AutoMigrate(gormDB.WithContext(ctx)); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		appLogger.Info("database schema migrated")
	}

	if configs.DBSeedStatuses {
		names := catalog.StandardStatusNames()
		if err = catalogrepo.NewGormCatalogRepository(gormDB).EnsureStatuses(ctx, names); err != nil {
			log.Fatalf("Error seeding order statuses: %v", err)
		}
		appLogger.Info("order statuses seeded", "statuses", names)
	}

	return gormDB
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, appLogger *slog.Logger) {
	address := fmt.Sprintf("0.0.0.0:%s", port)

	go func() {
		appLogger.Info("http server started", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http server shutdown failed", "error", err)
	}
}
