// Command seed provisions the admin account, the storefront settings and the
// initial fruit catalog. Products are created unconditionally, so running it
// against a populated database duplicates them.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"fruitbasket-backend/catalog"
	"fruitbasket-backend/config"
	"fruitbasket-backend/database"
	"fruitbasket-backend/logger"
	"fruitbasket-backend/seed"

	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		panic(err)
	}
	cfg := config.Load()

	log := logger.Must(cfg.Logger, cfg.Server.AppEnv)
	defer log.Sync()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	admin := database.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}
	if err := seed.NewSeeder(db, log).Run(ctx, admin, catalog.InitialCatalog()); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding completed")
}
