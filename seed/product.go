package seed

import (
	"context"
	"fmt"

	"fruitbasket-backend/catalog"
	"fruitbasket-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// validateAll rejects the whole list before anything is written.
func validateAll(defs []catalog.ProductDef) error {
	for i, d := range defs {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return nil
}

// createProduct writes one product and all of its variants in a single transaction, so
// a product is never visible without its variants. When db is already a transaction the
// inner one becomes a savepoint.
func createProduct(ctx context.Context, db *gorm.DB, log *zap.Logger, def catalog.ProductDef, mode catalog.Mode) (models.Product, error) {
	product, err := catalog.Materialize(def, mode)
	if err != nil {
		return models.Product{}, err
	}

	variants := product.Variants
	product.Variants = nil

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ProductID = product.ID
			if err := tx.Create(&variants[i]).Error; err != nil {
				return fmt.Errorf("variant %q: %w", variants[i].DisplayName, err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to create product %q: %w", def.Name, err)
	}
	product.Variants = variants

	log.Info("Created product",
		zap.String("product", product.Name),
		zap.String("id", product.ID.String()),
		zap.String("category", product.Category),
		zap.String("retail_price", product.RetailPrice.StringFixed(2)),
		zap.Int("stock", product.Stock),
		zap.Int("variants", len(variants)),
	)
	for _, v := range variants {
		log.Info("Created variant",
			zap.String("product", product.Name),
			zap.String("variant", v.DisplayName),
			zap.String("retail_price", v.RetailPrice.StringFixed(2)),
			zap.String("wholesale_price", v.WholesalePrice.StringFixed(2)),
			zap.Int("stock", v.Stock),
			zap.Bool("default", v.IsDefault),
		)
	}

	return product, nil
}

// CatalogPopulated reports whether any product exists.
func CatalogPopulated(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count products: %w", err)
	}
	return count > 0, nil
}
