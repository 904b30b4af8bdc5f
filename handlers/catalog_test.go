package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fruitbasket-backend/catalog"
	"fruitbasket-backend/models"
	"fruitbasket-backend/seed"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newReseeder(db *gorm.DB) *seed.Reseeder {
	return seed.NewReseeder(db, zap.NewNop(), catalog.IndiaCatalog())
}

// failProductCreate makes inserts of the named product fail.
func failProductCreate(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_product", func(tx *gorm.DB) {
		if p, ok := tx.Statement.Dest.(*models.Product); ok && p.Name == name {
			tx.AddError(errors.New("simulated storage error"))
		}
	})
	if err != nil {
		t.Fatal(err)
	}
}

func countProducts(db *gorm.DB) int64 {
	var n int64
	db.Model(&models.Product{}).Count(&n)
	return n
}

func TestGetProductsEmpty(t *testing.T) {
	db := freshDB(t)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected empty JSON array, got %s", w.Body.String())
	}
}

func TestGetProductsWithVariantsInOrder(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	products := parseResponseArray(w)
	if len(products) != 15 {
		t.Fatalf("expected 15 products, got %d", len(products))
	}
	for _, raw := range products {
		p := raw.(map[string]interface{})
		variants, _ := p["variants"].([]interface{})
		if len(variants) == 0 {
			t.Errorf("%v has no variants", p["name"])
			continue
		}
		prev := -1.0
		for _, rv := range variants {
			order := rv.(map[string]interface{})["sort_order"].(float64)
			if order < prev {
				t.Errorf("%v variants out of order", p["name"])
			}
			prev = order
		}
	}
}

func TestGetProductsFilters(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)

	var wantFeatured int
	for _, d := range catalog.InitialCatalog() {
		if d.Featured {
			wantFeatured++
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products?featured=true", nil))
	if got := len(parseResponseArray(w)); got != wantFeatured {
		t.Errorf("expected %d featured products, got %d", wantFeatured, got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products?category=Apples", nil))
	for _, raw := range parseResponseArray(w) {
		if raw.(map[string]interface{})["category"] != "Apples" {
			t.Errorf("category filter leaked %v", raw.(map[string]interface{})["name"])
		}
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products?featured=maybe", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for bad featured flag, got %d", w.Code)
	}
}

func TestGetProduct(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)

	var apples models.Product
	if err := db.Where("name = ?", "Fresh Red Apples (Shimla)").First(&apples).Error; err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products/"+apples.ID.String(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["retail_price"] != "150" {
		t.Errorf("expected retail_price \"150\", got %v", resp["retail_price"])
	}
	if resp["stock"] != float64(190) {
		t.Errorf("expected stock 190, got %v", resp["stock"])
	}
	variants := resp["variants"].([]interface{})
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(variants))
	}
	if variants[1].(map[string]interface{})["is_default"] != true {
		t.Error("expected the 1 kg pack to be the default")
	}
}

func TestGetProductNotFound(t *testing.T) {
	db := freshDB(t)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products/"+uuid.New().String(), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products/42", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetProductsServedFromCache(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	cache := newMemoryCache()
	router, _ := setupCatalogRouter(db, newReseeder(db), cache)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if w.Header().Get("X-Cache") != "MISS" {
		t.Errorf("expected first read to miss, got %q", w.Header().Get("X-Cache"))
	}
	first := w.Body.String()

	// Rows changed behind the cache's back; the cached payload is still served
	db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{})

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if w.Header().Get("X-Cache") != "HIT" {
		t.Errorf("expected second read to hit, got %q", w.Header().Get("X-Cache"))
	}
	if w.Body.String() != first {
		t.Error("cached body differs from the original response")
	}
}

func TestGetProductsCacheFailureFallsBackToDB(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	cache := newMemoryCache()
	cache.failGet = true
	router, _ := setupCatalogRouter(db, newReseeder(db), cache)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if len(parseResponseArray(w)) != 15 {
		t.Error("expected products from the database")
	}
}

func TestReseedSuccess(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["success"] != true {
		t.Errorf("expected success true, got %v", resp["success"])
	}
	if resp["message"] != "Database reseeded successfully" {
		t.Errorf("unexpected message %v", resp["message"])
	}
	stats := resp["stats"].(map[string]interface{})
	if stats["deleted"] != float64(15) || stats["created"] != float64(8) {
		t.Errorf("expected deleted=15 created=8, got %v", stats)
	}
	if _, hasError := resp["error"]; hasError {
		t.Error("success response must not carry an error")
	}

	if n := countProducts(db); n != 8 {
		t.Errorf("expected 8 products, got %d", n)
	}
	var leftovers int64
	db.Model(&models.Product{}).Where("name = ?", "Fresh Red Apples (Shimla)").Count(&leftovers)
	if leftovers != 0 {
		t.Error("original catalog products survived the reseed")
	}
}

func TestReseedMidListFailureLeavesDegradedCatalog(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	reseeder := newReseeder(db)
	reseeder.Atomic = false
	router, _ := setupCatalogRouter(db, reseeder, nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)
	failProductCreate(t, db, "Anar (Bhagwa Pomegranate)")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["success"] != false {
		t.Errorf("expected success false, got %v", resp["success"])
	}
	if resp["message"] != "Failed to reseed database" {
		t.Errorf("unexpected message %v", resp["message"])
	}
	if msg, _ := resp["error"].(string); msg == "" {
		t.Error("expected an error description")
	}
	if _, hasStats := resp["stats"]; hasStats {
		t.Error("failure response must not carry stats")
	}

	// Deleted products are not restored; only the products before the failure exist
	if n := countProducts(db); n != 4 {
		t.Errorf("expected 4 products in the degraded catalog, got %d", n)
	}
}

func TestReseedAtomicFailureKeepsCatalog(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)
	failProductCreate(t, db, "Anar (Bhagwa Pomegranate)")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	if n := countProducts(db); n != 15 {
		t.Errorf("expected the original 15 products, got %d", n)
	}
}

func TestReseedInvalidatesCache(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	cache := newMemoryCache()
	router, _ := setupCatalogRouter(db, newReseeder(db), cache)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if cache.size() == 0 {
		t.Fatal("expected the product list to be cached")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if cache.invalidated != 1 || cache.size() != 0 {
		t.Errorf("expected cache to be invalidated once, got %d (size %d)", cache.invalidated, cache.size())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if got := len(parseResponseArray(w)); got != 8 {
		t.Errorf("expected 8 products after reseed, got %d", got)
	}
}

func TestReseedRunsAreRecorded(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	reseeder := newReseeder(db)
	reseeder.Atomic = false
	router, _ := setupCatalogRouter(db, reseeder, nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)
	failProductCreate(t, db, "Nagpur Santra")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))
	runID, _ := parseResponse(w)["run_id"].(string)
	if runID == "" {
		t.Fatal("expected run_id in response")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/catalog/reseed/runs/"+runID, nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	run := parseResponse(w)
	if run["status"] != "failed" {
		t.Errorf("expected failed run, got %v", run["status"])
	}
	if run["started_by"] != "admin@test.com" {
		t.Errorf("expected started_by admin@test.com, got %v", run["started_by"])
	}
	if run["deleted"] != float64(15) || run["created"] != float64(2) {
		t.Errorf("expected deleted=15 created=2, got deleted=%v created=%v", run["deleted"], run["created"])
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/catalog/reseed/runs", nil, token))
	runs := parseResponse(w)["runs"].([]interface{})
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestGetReseedRunNotFound(t *testing.T) {
	db := freshDB(t)
	router, _ := setupCatalogRouter(db, newReseeder(db), nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/catalog/reseed/runs/"+uuid.New().String(), nil, token))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetProductsReadRacingReseedIsNotCached(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	cache := newMemoryCache()
	router, h := setupCatalogRouter(db, newReseeder(db), cache)

	// The reseed lands after the read loaded the old catalog but before it is cached
	var once sync.Once
	cache.beforeSet = func() {
		once.Do(func() {
			if _, err := h.Reseeder.Reseed(context.Background()); err != nil {
				t.Errorf("reseed failed: %v", err)
			}
		})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if got := len(parseResponseArray(w)); got != 15 {
		t.Fatalf("expected the in-flight read to return 15 products, got %d", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/products", nil))
	if w.Header().Get("X-Cache") != "MISS" {
		t.Errorf("expected the stale entry to be bypassed, got X-Cache %q", w.Header().Get("X-Cache"))
	}
	if got := len(parseResponseArray(w)); got != 8 {
		t.Errorf("expected 8 products after reseed, got %d", got)
	}
}

func TestReseedSurvivesClientDisconnect(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	reseeder := newReseeder(db)
	reseeder.Atomic = false
	router, _ := setupCatalogRouter(db, reseeder, nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// The client goes away right after the old catalog is deleted
	err := db.Callback().Delete().After("gorm:delete").Register("test:disconnect", func(*gorm.DB) {
		cancel()
	})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token).WithContext(ctx))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if n := countProducts(db); n != 8 {
		t.Errorf("expected 8 products, got %d", n)
	}
}

func TestReseedConcurrentRequestIsRejectedWithoutRun(t *testing.T) {
	db := freshDB(t)
	seedInitialCatalog(t, db)
	router, h := setupCatalogRouter(db, newReseeder(db), nil)
	_, token := seedTestUser(db, "admin@test.com", models.RoleAdmin)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	err := db.Callback().Delete().Before("gorm:delete").Register("test:hold", func(*gorm.DB) {
		once.Do(func() {
			close(entered)
			<-release
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))
		done <- w
	}()
	<-entered

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/catalog/reseed", nil, token))
	close(release)
	first := <-done

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
	if _, hasRun := parseResponse(w)["run_id"]; hasRun {
		t.Error("rejected reseed must not report a run")
	}
	if first.Code != http.StatusOK {
		t.Fatalf("expected the first reseed to succeed, got %d: %s", first.Code, first.Body.String())
	}

	runs := h.Runs.ListRuns()
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 recorded run, got %d", len(runs))
	}
	if runs[0].Status != "completed" {
		t.Errorf("expected completed run, got %s", runs[0].Status)
	}
}
