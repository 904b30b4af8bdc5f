package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry. RetailPrice, WholesalePrice, MinQtyWholesale and Stock are
// legacy fields kept for older storefront clients; they are written once at creation from
// the variants and are not kept in sync afterwards.
type Product struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"not null;index" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"index" json:"category"`
	DefaultUnit     Unit            `gorm:"type:varchar(16);not null;default:kilogram" json:"default_unit"`
	Featured        bool            `gorm:"default:false;index" json:"featured"`
	ImageURL        string          `gorm:"column:image_url" json:"image_url"`
	RetailPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"retail_price"`
	WholesalePrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"wholesale_price"`
	MinQtyWholesale int             `gorm:"not null;default:1" json:"min_qty_wholesale"`
	Stock           int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Variants        []Variant       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
