package routes

import (
	"context"
	"net/http"
	"time"

	"fruitbasket-backend/cache"
	"fruitbasket-backend/handlers"
	"fruitbasket-backend/middleware"
	"fruitbasket-backend/seed"
	"fruitbasket-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries everything the HTTP layer needs. Cache may be nil.
type Deps struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Reseeder *seed.Reseeder
	Cache    handlers.ProductCache
	Runs     *utils.RunStore
}

// cacheHealth is implemented by caches that can report on themselves.
type cacheHealth interface {
	Ping(ctx context.Context) error
	Stats() cache.Stats
}

// SetupRoutes registers every endpoint. The returned func stops the rate limiters'
// background cleanup.
func SetupRoutes(r *gin.Engine, deps Deps) func() {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Runs == nil {
		deps.Runs = utils.NewRunStore()
	}

	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: deps.DB}
	settingsHandler := &handlers.SettingsHandler{DB: deps.DB}
	catalogHandler := &handlers.CatalogHandler{
		DB:       deps.DB,
		Reseeder: deps.Reseeder,
		Runs:     deps.Runs,
		Cache:    deps.Cache,
		Log:      deps.Log,
	}
	if deps.Reseeder.OnReplaced == nil {
		deps.Reseeder.OnReplaced = catalogHandler.InvalidateCache
	}

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	reseedLimiter := middleware.NewRateLimiter(3, time.Minute).WithKey(middleware.KeyByUser)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)

		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)

		api.GET("/settings", settingsHandler.GetSettings)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.PUT("/auth/password", authHandler.ChangePassword)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/catalog/reseed", reseedLimiter.Middleware(), catalogHandler.ReseedCatalog)
		admin.GET("/catalog/reseed/runs", catalogHandler.GetReseedRuns)
		admin.GET("/catalog/reseed/runs/:id", catalogHandler.GetReseedRun)
	}

	// Health check. A cache outage is reported but does not fail the check; reads fall
	// back to the database.
	r.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if ch, ok := deps.Cache.(cacheHealth); ok {
			stats := ch.Stats()
			cacheStatus := "ok"
			if err := ch.Ping(c.Request.Context()); err != nil {
				cacheStatus = "unreachable"
			}
			body["cache"] = gin.H{"status": cacheStatus, "hits": stats.Hits, "misses": stats.Misses}
		}

		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			body["status"] = "degraded"
			body["database"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	})

	return func() {
		loginLimiter.Stop()
		reseedLimiter.Stop()
	}
}
