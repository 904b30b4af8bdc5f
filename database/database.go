package database

import (
	"context"
	"errors"
	"fmt"

	"fruitbasket-backend/config"
	"fruitbasket-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// AdminSeed describes the administrator account provisioned on first start.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Variant{},
		&models.WebsiteSettings{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// AutoMigrate will NOT change the ON DELETE action of an existing foreign key.
	if err := repairVariantCascade(db); err != nil {
		return err
	}

	return nil
}

// UpsertAdmin creates the administrator if no user with that email exists. An existing
// row is returned as-is: its password, name and role are never overwritten. The email is
// unique across soft-deleted users too, so a deleted row is returned rather than replaced.
func UpsertAdmin(ctx context.Context, db *gorm.DB, seed AdminSeed) (models.User, bool, error) {
	if seed.Email == "" {
		return models.User{}, false, errors.New("admin email is required")
	}
	if seed.Password == "" {
		return models.User{}, false, errors.New("admin password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:         seed.Email,
		Password:      string(hashedPassword),
		Name:          seed.Name,
		Role:          models.RoleAdmin,
		EmailVerified: true,
	}

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&admin)
	if result.Error != nil {
		return models.User{}, false, fmt.Errorf("failed to upsert admin %s: %w", seed.Email, result.Error)
	}

	var stored models.User
	if err := db.WithContext(ctx).Unscoped().Where("email = ?", seed.Email).First(&stored).Error; err != nil {
		return models.User{}, false, fmt.Errorf("failed to load admin %s: %w", seed.Email, err)
	}
	return stored, result.RowsAffected == 1, nil
}

// UpsertSettings provisions the single WebsiteSettings row with defaults when it is absent.
func UpsertSettings(ctx context.Context, db *gorm.DB) (models.WebsiteSettings, bool, error) {
	settings := models.DefaultWebsiteSettings()

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&settings)
	if result.Error != nil {
		return models.WebsiteSettings{}, false, fmt.Errorf("failed to upsert website settings: %w", result.Error)
	}

	var stored models.WebsiteSettings
	if err := db.WithContext(ctx).First(&stored, models.SettingsID).Error; err != nil {
		return models.WebsiteSettings{}, false, fmt.Errorf("failed to load website settings: %w", err)
	}
	return stored, result.RowsAffected == 1, nil
}

func repairVariantCascade(db *gorm.DB) error {
	// Ensure the variants -> products foreign key deletes variants with their product.
	// An older schema may carry the constraint without ON DELETE CASCADE. Safe to run repeatedly.
	if err := db.Exec(`
DO $$
DECLARE
  fk_name text;
  fk_action "char";
BEGIN
  IF to_regclass('public.variants') IS NULL THEN
    RETURN;
  END IF;

  SELECT c.conname, c.confdeltype
    INTO fk_name, fk_action
    FROM pg_constraint c
   WHERE c.conrelid = 'variants'::regclass
     AND c.confrelid = 'products'::regclass
     AND c.contype = 'f'
   LIMIT 1;

  IF fk_name IS NULL THEN
    EXECUTE 'ALTER TABLE variants ADD CONSTRAINT fk_products_variants FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE';
  ELSIF fk_action <> 'c' THEN
    EXECUTE format('ALTER TABLE variants DROP CONSTRAINT %I', fk_name);
    EXECUTE 'ALTER TABLE variants ADD CONSTRAINT fk_products_variants FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE';
  END IF;
END $$;
	`).Error; err != nil {
		return fmt.Errorf("failed to repair variants foreign key: %w", err)
	}

	return nil
}
