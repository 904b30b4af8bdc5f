package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fruitbasket-backend/catalog"
	"fruitbasket-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrReseedInProgress is returned when another reseed on the same Reseeder is running.
var ErrReseedInProgress = errors.New("a catalog reseed is already running")

// Stats is the outcome of a reseed. On failure it holds what was done before the error.
type Stats struct {
	Deleted int64 `json:"deleted"`
	Created int   `json:"created"`
}

// Tracker observes a reseed as it runs. Started is called once the reseed holds the lock.
type Tracker interface {
	Started()
	Deleted(n int64)
	Created(product string)
}

// Reseeder replaces the entire product catalog with Catalog.
type Reseeder struct {
	DB      *gorm.DB
	Log     *zap.Logger
	Catalog []catalog.ProductDef
	// Mode decides where product-level price and stock come from. NewReseeder sets
	// TrustLiteral, which keeps the values authored in the catalog.
	Mode catalog.Mode
	// Atomic runs delete and create in one transaction so a failure leaves the previous
	// catalog in place. Without it a failure part way leaves a partial catalog.
	// NewReseeder turns it on.
	Atomic bool
	// OnReplaced runs after every attempt that got past validation, successful or not.
	OnReplaced func(ctx context.Context)

	mu sync.Mutex
}

func NewReseeder(db *gorm.DB, log *zap.Logger, defs []catalog.ProductDef) *Reseeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reseeder{DB: db, Log: log, Catalog: defs, Mode: catalog.TrustLiteral, Atomic: true}
}

func (r *Reseeder) Reseed(ctx context.Context) (Stats, error) {
	return r.ReseedWith(ctx, nil)
}

// ReseedWith deletes every product (variants go with them) and creates the catalog. A
// delete failure aborts before anything is created.
func (r *Reseeder) ReseedWith(ctx context.Context, tr Tracker) (Stats, error) {
	if !r.mu.TryLock() {
		return Stats{}, ErrReseedInProgress
	}
	defer r.mu.Unlock()

	if tr == nil {
		tr = nopTracker{}
	}
	tr.Started()

	if err := validateAll(r.Catalog); err != nil {
		return Stats{}, err
	}
	if r.OnReplaced != nil {
		defer r.OnReplaced(ctx)
	}

	r.Log.Info("Reseeding catalog",
		zap.Int("products", len(r.Catalog)),
		zap.Stringer("mode", r.Mode),
		zap.Bool("atomic", r.Atomic),
	)

	if !r.Atomic {
		stats, err := r.replace(ctx, r.DB, tr)
		if err != nil {
			r.Log.Error("Catalog reseed failed",
				zap.Int64("deleted", stats.Deleted),
				zap.Int("created", stats.Created),
				zap.Error(err),
			)
			return stats, err
		}
		r.Log.Info("Catalog reseeded", zap.Int64("deleted", stats.Deleted), zap.Int("created", stats.Created))
		return stats, nil
	}

	var stats Stats
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		stats, err = r.replace(ctx, tx, tr)
		return err
	})
	if err != nil {
		r.Log.Error("Catalog reseed rolled back", zap.Error(err))
		return Stats{}, err
	}
	r.Log.Info("Catalog reseeded", zap.Int64("deleted", stats.Deleted), zap.Int("created", stats.Created))
	return stats, nil
}

func (r *Reseeder) replace(ctx context.Context, db *gorm.DB, tr Tracker) (Stats, error) {
	var stats Stats

	result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{})
	if result.Error != nil {
		return stats, fmt.Errorf("failed to delete products: %w", result.Error)
	}
	stats.Deleted = result.RowsAffected
	tr.Deleted(stats.Deleted)
	r.Log.Info("Deleted products", zap.Int64("deleted", stats.Deleted))

	for _, def := range r.Catalog {
		if _, err := createProduct(ctx, db, r.Log, def, r.Mode); err != nil {
			return stats, err
		}
		stats.Created++
		tr.Created(def.Name)
	}
	return stats, nil
}

type nopTracker struct{}

func (nopTracker) Started()       {}
func (nopTracker) Deleted(int64)  {}
func (nopTracker) Created(string) {}
