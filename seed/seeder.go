package seed

import (
	"context"
	"fmt"

	"fruitbasket-backend/catalog"
	"fruitbasket-backend/database"
	"fruitbasket-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder performs the initial population of an empty store.
type Seeder struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewSeeder(db *gorm.DB, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{DB: db, Log: log}
}

// SeedProducts creates every definition as a new product, deriving the product-level
// price and stock fields from the variants. It does not look for existing products, so
// running it twice duplicates the catalog. The first failure stops the run; products
// created before it stay.
func (s *Seeder) SeedProducts(ctx context.Context, defs []catalog.ProductDef) (int, error) {
	if err := validateAll(defs); err != nil {
		return 0, err
	}

	created := 0
	for _, def := range defs {
		if _, err := createProduct(ctx, s.DB, s.Log, def, catalog.DeriveLegacy); err != nil {
			return created, err
		}
		created++
	}

	s.Log.Info("Seeded products", zap.Int("created", created))
	return created, nil
}

// ReportAdmin logs the outcome of UpsertAdmin. It warns when the configured email belongs
// to an account that cannot sign in as administrator.
func ReportAdmin(log *zap.Logger, user models.User, created bool) {
	switch {
	case created:
		log.Info("Created admin user", zap.String("email", user.Email))
	case user.DeletedAt.Valid:
		log.Warn("Admin user is deleted and cannot sign in", zap.String("email", user.Email))
	case !user.IsAdmin():
		log.Warn("Admin email belongs to a non-admin user",
			zap.String("email", user.Email),
			zap.String("role", user.Role),
		)
	default:
		log.Info("Admin user already exists", zap.String("email", user.Email))
	}
}

// Run provisions the administrator and the website settings, then seeds the products.
func (s *Seeder) Run(ctx context.Context, admin database.AdminSeed, defs []catalog.ProductDef) error {
	user, created, err := database.UpsertAdmin(ctx, s.DB, admin)
	if err != nil {
		return err
	}
	ReportAdmin(s.Log, user, created)

	if _, created, err := database.UpsertSettings(ctx, s.DB); err != nil {
		return err
	} else if created {
		s.Log.Info("Created website settings")
	} else {
		s.Log.Info("Website settings already exist")
	}

	if _, err := s.SeedProducts(ctx, defs); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}
