package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed primary key of the only WebsiteSettings row.
const SettingsID uint = 1

// WebsiteSettings holds storefront-wide values. The table is meant to hold exactly one row.
type WebsiteSettings struct {
	ID                    uint            `gorm:"primaryKey;autoIncrement:false" json:"id"`
	StoreName             string          `gorm:"not null" json:"store_name"`
	Tagline               string          `json:"tagline"`
	Currency              string          `gorm:"type:varchar(3);not null;default:INR" json:"currency"`
	ContactEmail          string          `json:"contact_email"`
	ContactPhone          string          `json:"contact_phone"`
	WhatsAppNumber        string          `gorm:"column:whatsapp_number" json:"whatsapp_number"`
	DeliveryCharge        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"delivery_charge"`
	FreeDeliveryThreshold decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"free_delivery_threshold"`
	MinOrderAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"min_order_amount"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// DefaultWebsiteSettings is the row provisioned on first seed.
func DefaultWebsiteSettings() WebsiteSettings {
	return WebsiteSettings{
		ID:                    SettingsID,
		StoreName:             "FruitBasket",
		Tagline:               "Farm-fresh fruit, delivered daily",
		Currency:              "INR",
		ContactEmail:          "support@fruitbasket.in",
		ContactPhone:          "+91 98765 43210",
		WhatsAppNumber:        "+919876543210",
		DeliveryCharge:        decimal.NewFromInt(40),
		FreeDeliveryThreshold: decimal.NewFromInt(499),
		MinOrderAmount:        decimal.NewFromInt(99),
	}
}
