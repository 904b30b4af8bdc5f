package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fruitbasket-backend/cache"
	"fruitbasket-backend/catalog"
	"fruitbasket-backend/config"
	"fruitbasket-backend/database"
	"fruitbasket-backend/handlers"
	"fruitbasket-backend/logger"
	"fruitbasket-backend/middleware"
	"fruitbasket-backend/routes"
	"fruitbasket-backend/seed"
	"fruitbasket-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	cfg := config.Load()
	zlog := logger.Must(cfg.Logger, cfg.Server.AppEnv)
	defer zlog.Sync()

	for _, w := range config.Warnings() {
		zlog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Seeding only runs against a schema that migrated cleanly; the server starts either way
	if err := database.Migrate(db); err != nil {
		zlog.Error("Failed to run migrations, skipping seed", zap.Error(err))
	} else {
		provision(ctx, db, cfg, zlog)
	}

	var productCache handlers.ProductCache
	var catalogCache *cache.CatalogCache
	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			zlog.Warn("Redis unavailable, serving catalog without cache", zap.Error(err))
		} else {
			catalogCache = cache.New(client, "", cfg.Redis.CacheTTL)
			productCache = catalogCache
		}
	}

	mode, err := catalog.ParseMode(cfg.Seed.LegacyMode)
	if err != nil {
		zlog.Fatal("Invalid RESEED_LEGACY_MODE", zap.Error(err))
	}
	reseeder := seed.NewReseeder(db, zlog.Named("reseed"), catalog.IndiaCatalog())
	reseeder.Mode = mode
	reseeder.Atomic = cfg.Seed.AtomicReseed

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog.Named("http")))

	// CORS configuration - filter out empty strings from AllowOrigins
	var origins []string
	for _, o := range []string{cfg.Server.FrontendURL, cfg.Server.AdminURL} {
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
		zlog.Warn("No CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache", "Retry-After"},
		AllowCredentials: true,
	}))

	runs := utils.NewRunStore()
	stopLimiters := routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Log:      zlog,
		Reseeder: reseeder,
		Cache:    productCache,
		Runs:     runs,
	})
	defer stopLimiters()

	go pruneRuns(ctx, runs)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	if catalogCache != nil {
		if err := catalogCache.Close(); err != nil {
			zlog.Warn("Error closing redis client", zap.Error(err))
		}
	}

	// Close database connection
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			zlog.Error("Error closing database connection", zap.Error(err))
		} else {
			zlog.Info("Database connection closed")
		}
	}

	zlog.Info("Server exited gracefully")
}

// provision upserts the admin and settings rows, then seeds the initial catalog
// when enabled and the store is empty. Failures are logged and never stop the server.
func provision(ctx context.Context, db *gorm.DB, cfg *config.Config, zlog *zap.Logger) {
	admin := database.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}
	if user, created, err := database.UpsertAdmin(ctx, db, admin); err != nil {
		zlog.Warn("Could not create default admin", zap.Error(err))
	} else {
		seed.ReportAdmin(zlog, user, created)
	}

	if _, created, err := database.UpsertSettings(ctx, db); err != nil {
		zlog.Warn("Could not create website settings", zap.Error(err))
	} else if created {
		zlog.Info("Created default website settings")
	}

	if !cfg.Seed.OnStartup {
		return
	}
	populated, err := seed.CatalogPopulated(ctx, db)
	if err != nil {
		zlog.Error("Could not inspect catalog, skipping seed", zap.Error(err))
		return
	}
	if populated {
		zlog.Info("Catalog already populated, skipping seed")
		return
	}
	n, err := seed.NewSeeder(db, zlog.Named("seed")).SeedProducts(ctx, catalog.InitialCatalog())
	if err != nil {
		zlog.Error("Seeding failed", zap.Int("created", n), zap.Error(err))
		return
	}
	zlog.Info("Seeded initial catalog", zap.Int("products", n))
}

// pruneRuns drops finished reseed runs past their retention until ctx is done.
func pruneRuns(ctx context.Context, runs *utils.RunStore) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runs.CleanupOldRuns()
		}
	}
}
