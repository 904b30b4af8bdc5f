package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fruitbasket-backend/cache"
	"fruitbasket-backend/catalog"
	"fruitbasket-backend/seed"
	"fruitbasket-backend/testutil"
	"fruitbasket-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-for-routes")
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := testutil.NewDB(t)
	r := gin.New()
	stop := SetupRoutes(r, Deps{
		DB:       db,
		Log:      zap.NewNop(),
		Reseeder: seed.NewReseeder(db, zap.NewNop(), catalog.IndiaCatalog()),
	})
	t.Cleanup(stop)
	return r, db
}

func TestHealthCheck(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

// stubCache is a ProductCache that also reports health.
type stubCache struct {
	pingErr error
}

func (stubCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (stubCache) Set(context.Context, string, []byte) error         { return nil }
func (stubCache) Invalidate(context.Context) error                  { return nil }
func (s stubCache) Ping(context.Context) error                      { return s.pingErr }
func (stubCache) Stats() cache.Stats                                { return cache.Stats{Hits: 7, Misses: 3} }

func healthWithCache(t *testing.T, c stubCache) (int, map[string]interface{}) {
	t.Helper()
	db := testutil.NewDB(t)
	r := gin.New()
	stop := SetupRoutes(r, Deps{
		DB:       db,
		Log:      zap.NewNop(),
		Reseeder: seed.NewReseeder(db, zap.NewNop(), catalog.IndiaCatalog()),
		Cache:    c,
	})
	t.Cleanup(stop)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	return w.Code, body
}

func TestHealthCheckReportsCache(t *testing.T) {
	code, body := healthWithCache(t, stubCache{})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	c, ok := body["cache"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected cache section, got %v", body)
	}
	if c["status"] != "ok" || c["hits"] != float64(7) || c["misses"] != float64(3) {
		t.Errorf("unexpected cache report %v", c)
	}
}

func TestHealthCheckCacheDownStaysHealthy(t *testing.T) {
	code, body := healthWithCache(t, stubCache{pingErr: errors.New("connection refused")})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["cache"].(map[string]interface{})["status"] != "unreachable" {
		t.Errorf("expected cache unreachable, got %v", body["cache"])
	}
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	r, db := setupRouter(t)
	sqlDB, _ := db.DB()
	sqlDB.Close()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPublicProductsRoute(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReseedRouteRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/admin/catalog/reseed", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReseedRouteBlocksNonAdmin(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := utils.GenerateToken(uuid.New(), "user@test.com", "customer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/catalog/reseed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReseedRouteAllowsAdmin(t *testing.T) {
	r, db := setupRouter(t)
	token, _ := utils.GenerateToken(uuid.New(), "admin@test.com", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/catalog/reseed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Table("products").Count(&count)
	if count != 8 {
		t.Errorf("expected 8 products after reseed, got %d", count)
	}
}

func TestReseedRouteIsRateLimited(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := utils.GenerateToken(uuid.New(), "admin@test.com", "admin")

	var last int
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/admin/catalog/reseed", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected the 4th reseed within a minute to be rejected, got %d", last)
	}
}

func TestSettingsRouteIsPublic(t *testing.T) {
	r, _ := setupRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/settings", nil))
	// No settings row provisioned in this database
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
