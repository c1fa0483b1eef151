package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pressly/goose/v3"

	"github.com/parsab/daryaban/internal/pkg/config"
	"github.com/parsab/daryaban/internal/pkg/database"
	"github.com/parsab/daryaban/internal/pkg/health"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/middleware"
	nrpkg "github.com/parsab/daryaban/internal/pkg/newrelic"
	"github.com/parsab/daryaban/migrations"
	authHandler "github.com/parsab/daryaban/services/auth/handler"
	authHTTP "github.com/parsab/daryaban/services/auth/handler/http"
	authRepo "github.com/parsab/daryaban/services/auth/repository"
	authUC "github.com/parsab/daryaban/services/auth/usecase"
	"github.com/parsab/daryaban/services/auth/gateway"
	fleetHandler "github.com/parsab/daryaban/services/fleet/handler"
	fleetHTTP "github.com/parsab/daryaban/services/fleet/handler/http"
	fleetRepo "github.com/parsab/daryaban/services/fleet/repository"
	fleetUC "github.com/parsab/daryaban/services/fleet/usecase"
)

const appName = "daryaban-api"

func main() {
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	if err := runMigrations(postgresClient); err != nil {
		logger.Fatal("failed to run migrations", logger.Err(err))
	}

	// Auth service
	aRepo := authRepo.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	smsGW := gateway.NewAuthGW(&configs.SMS)
	aUC := authUC.NewAuthUC(configs, aRepo, aRepo, smsGW)
	aHandler := authHandler.NewHandler(authHTTP.NewAuthHandler(aUC, configs), configs)

	// Fleet service
	fRepo := fleetRepo.NewFleetRepo(configs, postgresClient.GetDB(), redisClient)
	fUC := fleetUC.NewFleetUC(configs, fRepo)
	fHandler := fleetHandler.NewHandler(fleetHTTP.NewFleetHandler(fUC, configs), configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	aHandler.RegisterRoutes(e)
	fHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		logger.Info("starting server", logger.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("server stopped", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", logger.Err(err))
	}
}

// runMigrations applies the embedded goose migrations at startup
func runMigrations(pg *database.PostgresClient) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.Up(pg.GetDB().DB, ".")
}
