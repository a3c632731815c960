package main

import (
	"context"
	"os"

	"fsanano/shop-api/internal/auth"
	"fsanano/shop-api/internal/config"
	"fsanano/shop-api/internal/repository"
	"fsanano/shop-api/internal/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}

	fixture, err := loadFixture(cfg.SeedFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load fixture")
	}

	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer dbPool.Close()

	repo := repository.NewShopRepository(dbPool)
	if err := repo.Migrate(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	logger.Info("Starting seed...")
	if err := seed.Apply(ctx, repo, auth.NewPasswordHasher(cfg.BcryptCost), fixture, logger); err != nil {
		logger.WithError(err).Fatal("Seeding failed")
	}
	logger.Info("Seeding complete")
}

func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.DefaultFixture()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.Parse(data)
}
