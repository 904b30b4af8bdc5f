// Package testutil builds throwaway SQLite databases with the same tables the
// postgres migration creates. The models use postgres-only defaults
// (gen_random_uuid), so the tables are declared by hand instead of AutoMigrate.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS "users" (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"password" TEXT NOT NULL,
		"name" TEXT,
		"role" TEXT DEFAULT 'customer',
		"email_verified" INTEGER DEFAULT 0,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS "products" (
		"id" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"description" TEXT,
		"category" TEXT,
		"default_unit" TEXT NOT NULL DEFAULT 'kilogram',
		"featured" INTEGER DEFAULT 0,
		"image_url" TEXT,
		"retail_price" NUMERIC NOT NULL,
		"wholesale_price" NUMERIC NOT NULL,
		"min_qty_wholesale" INTEGER NOT NULL DEFAULT 1,
		"stock" INTEGER NOT NULL DEFAULT 0,
		"created_at" DATETIME,
		"updated_at" DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS "variants" (
		"id" TEXT PRIMARY KEY,
		"product_id" TEXT NOT NULL,
		"quantity" NUMERIC NOT NULL,
		"unit" TEXT NOT NULL,
		"display_name" TEXT NOT NULL,
		"retail_price" NUMERIC NOT NULL,
		"wholesale_price" NUMERIC NOT NULL,
		"min_qty_wholesale" INTEGER NOT NULL DEFAULT 1,
		"stock" INTEGER NOT NULL DEFAULT 0,
		"sort_order" INTEGER NOT NULL DEFAULT 0,
		"is_default" INTEGER DEFAULT 0,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		CONSTRAINT fk_products_variants FOREIGN KEY ("product_id") REFERENCES "products"("id") ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_variants_product_id ON "variants"("product_id")`,
	`CREATE TABLE IF NOT EXISTS "website_settings" (
		"id" INTEGER PRIMARY KEY,
		"store_name" TEXT NOT NULL,
		"tagline" TEXT,
		"currency" TEXT NOT NULL DEFAULT 'INR',
		"contact_email" TEXT,
		"contact_phone" TEXT,
		"whatsapp_number" TEXT,
		"delivery_charge" NUMERIC NOT NULL DEFAULT 0,
		"free_delivery_threshold" NUMERIC NOT NULL DEFAULT 0,
		"min_order_amount" NUMERIC NOT NULL DEFAULT 0,
		"created_at" DATETIME,
		"updated_at" DATETIME
	)`,
}

// NewDB returns an in-memory database with foreign keys enforced. It is pinned to a
// single connection so every query sees the same in-memory database; callers inside a
// transaction must use the tx handle or they will block on the pool.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatal(err)
	}
	for _, sql := range schema {
		if err := db.Exec(sql).Error; err != nil {
			t.Fatal(err)
		}
	}
	return db
}
