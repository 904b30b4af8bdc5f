package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Variant is one purchasable pack size of a Product, e.g. "500 g" or "6 pcs".
type Variant struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity"`
	Unit            Unit            `gorm:"type:varchar(16);not null" json:"unit"`
	DisplayName     string          `gorm:"not null" json:"display_name"`
	RetailPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"retail_price"`
	WholesalePrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"wholesale_price"`
	MinQtyWholesale int             `gorm:"not null;default:1" json:"min_qty_wholesale"`
	Stock           int             `gorm:"not null;default:0" json:"stock"`
	SortOrder       int             `gorm:"not null;default:0" json:"sort_order"`
	IsDefault       bool            `gorm:"default:false" json:"is_default"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
