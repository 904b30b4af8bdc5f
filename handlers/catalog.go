package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"fruitbasket-backend/dtos"
	"fruitbasket-backend/models"
	"fruitbasket-backend/seed"
	"fruitbasket-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductCache stores rendered product responses. A nil cache disables caching.
type ProductCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context) error
}

type CatalogHandler struct {
	DB       *gorm.DB
	Reseeder *seed.Reseeder
	Runs     *utils.RunStore
	Cache    ProductCache
	Log      *zap.Logger

	// generation is part of every cache key. Bumping it on invalidation orphans entries
	// written by reads that started before the catalog changed.
	generation atomic.Uint64
}

func withVariants(db *gorm.DB) *gorm.DB {
	return db.Preload("Variants", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("sort_order ASC")
	})
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	featured := c.Query("featured")

	var featuredOnly bool
	if featured != "" {
		parsed, err := strconv.ParseBool(featured)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be true or false"})
			return
		}
		featuredOnly = parsed
	}

	key := h.cacheKey("products?" + url.Values{"category": {category}, "featured": {strconv.FormatBool(featuredOnly)}}.Encode())
	if h.serveCached(c, key) {
		return
	}

	products := []models.Product{}
	query := withVariants(h.DB.WithContext(c.Request.Context()))

	// Filter by category
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	if err := query.Order("featured DESC").Order("name ASC").Find(&products).Error; err != nil {
		h.Log.Error("Failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	h.respondAndCache(c, key, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	key := h.cacheKey("product:" + id.String())
	if h.serveCached(c, key) {
		return
	}

	var product models.Product
	if err := withVariants(h.DB.WithContext(c.Request.Context())).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.Log.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	h.respondAndCache(c, key, product)
}

// ReseedCatalog replaces every product with the reseed catalog. Failures are reported to
// the caller; they never take the server down.
func (h *CatalogHandler) ReseedCatalog(c *gin.Context) {
	startedBy := c.GetString("user_email")
	h.Log.Info("Catalog reseed requested", zap.String("started_by", startedBy))

	tr := &runTracker{
		runs:      h.Runs,
		total:     len(h.Reseeder.Catalog),
		mode:      h.Reseeder.Mode.String(),
		atomic:    h.Reseeder.Atomic,
		startedBy: startedBy,
	}
	// A client disconnect must not stop the reseed half way through the catalog.
	stats, err := h.Reseeder.ReseedWith(context.WithoutCancel(c.Request.Context()), tr)

	if errors.Is(err, seed.ErrReseedInProgress) {
		c.JSON(http.StatusConflict, dtos.ReseedResponse{
			Success: false,
			Message: "A reseed is already running",
			Error:   err.Error(),
		})
		return
	}
	h.Runs.CompleteRun(tr.id, err)

	if err != nil {
		h.Log.Error("Catalog reseed failed", zap.String("run_id", tr.id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dtos.ReseedResponse{
			Success: false,
			Message: "Failed to reseed database",
			Error:   err.Error(),
			RunID:   &tr.id,
		})
		return
	}

	c.JSON(http.StatusOK, dtos.ReseedResponse{
		Success: true,
		Message: "Database reseeded successfully",
		Stats:   &dtos.ReseedStats{Deleted: stats.Deleted, Created: stats.Created},
		RunID:   &tr.id,
	})
}

func (h *CatalogHandler) GetReseedRuns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"runs": h.Runs.ListRuns()})
}

func (h *CatalogHandler) GetReseedRun(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid run ID"})
		return
	}

	run, ok := h.Runs.GetRun(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reseed run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}

// InvalidateCache is the Reseeder's OnReplaced hook.
func (h *CatalogHandler) InvalidateCache(ctx context.Context) {
	if h.Cache == nil {
		return
	}
	h.generation.Add(1)
	// The request context may already be cancelled; the catalog changed regardless.
	if err := h.Cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
		h.Log.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

func (h *CatalogHandler) cacheKey(key string) string {
	return "g" + strconv.FormatUint(h.generation.Load(), 10) + ":" + key
}

func (h *CatalogHandler) serveCached(c *gin.Context, key string) bool {
	if h.Cache == nil {
		return false
	}
	data, found, err := h.Cache.Get(c.Request.Context(), key)
	if err != nil {
		h.Log.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	c.Header("X-Cache", "HIT")
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	return true
}

func (h *CatalogHandler) respondAndCache(c *gin.Context, key string, body interface{}) {
	if h.Cache == nil {
		c.JSON(http.StatusOK, body)
		return
	}

	data, err := json.Marshal(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
		return
	}
	if err := h.Cache.Set(c.Request.Context(), key, data); err != nil {
		h.Log.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	c.Header("X-Cache", "MISS")
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// runTracker feeds reseed progress into the run history. The run is recorded only
// once the reseed holds the lock, so rejected requests leave no trace.
type runTracker struct {
	runs      *utils.RunStore
	total     int
	mode      string
	atomic    bool
	startedBy string
	id        uuid.UUID
}

func (t *runTracker) Started() {
	run := t.runs.CreateRun(t.total, t.mode, t.atomic, t.startedBy)
	t.runs.SetProcessing(run.ID)
	t.id = run.ID
}

func (t *runTracker) Deleted(n int64)        { t.runs.SetDeleted(t.id, n) }
func (t *runTracker) Created(product string) { t.runs.AddCreated(t.id, product) }
