package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fsanano/shop-api/internal/auth"
	"fsanano/shop-api/internal/config"
	"fsanano/shop-api/internal/handler"
	"fsanano/shop-api/internal/repository"
	"fsanano/shop-api/internal/service"
	"fsanano/shop-api/internal/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const serviceName = "shop-api"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, keeping info")
	}

	shutdownTracing, err := telemetry.Setup(serviceName, cfg.TracingEnabled, os.Stdout)
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up tracing")
	}

	// 2. Setup Database
	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer dbPool.Close()

	shopRepo := repository.NewShopRepository(dbPool)
	if err := shopRepo.Ping(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to ping database")
	}
	logger.Info("Connected to database")

	if cfg.AutoMigrate {
		if err := shopRepo.Migrate(ctx); err != nil {
			logger.WithError(err).Fatal("Failed to migrate database")
		}
		logger.Info("Database schema is up to date")
	}

	// 3. Setup Logic
	shopService := service.NewShopService(shopRepo)
	authService := service.NewAuthService(
		shopRepo,
		auth.NewPasswordHasher(cfg.BcryptCost),
		auth.NewTokenIssuer(cfg.JWT.SecretKey, cfg.JWT.AccessTTL),
	)

	h := handler.NewHandler(
		logger,
		handler.NewShopHandler(shopService, logger),
		handler.NewAuthHandler(authService, logger),
	)

	// 4. Setup Server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      telemetry.Middleware(serviceName)(h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Run Server with Graceful Shutdown
	go func() {
		logger.WithField("port", cfg.ServerPort).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.WithError(err).Warn("Failed to flush traces")
	}

	logger.Info("Server exiting")
}
