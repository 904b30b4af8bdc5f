// Package catalog holds the product/variant definitions the storefront is seeded from and
// the rules for turning a definition into rows.
package catalog

import (
	"errors"
	"fmt"

	"fruitbasket-backend/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNoVariants       = errors.New("product has no variants")
	ErrMultipleDefaults = errors.New("more than one variant is marked default")
	ErrInvalidVariant   = errors.New("invalid variant")
	ErrInvalidProduct   = errors.New("invalid product")
)

// VariantDef describes one pack size of a product.
type VariantDef struct {
	Quantity        decimal.Decimal
	Unit            models.Unit
	DisplayName     string
	RetailPrice     decimal.Decimal
	WholesalePrice  decimal.Decimal
	MinQtyWholesale int
	Stock           int
	SortOrder       int
	IsDefault       bool
}

// LegacyFields are the product-level price and stock values older clients read.
type LegacyFields struct {
	RetailPrice     decimal.Decimal
	WholesalePrice  decimal.Decimal
	MinQtyWholesale int
	Stock           int
}

// ProductDef describes a product and its variants in creation order. Legacy is optional and
// only honoured by TrustLiteral materialization.
type ProductDef struct {
	Name        string
	Description string
	Category    string
	DefaultUnit models.Unit
	Featured    bool
	ImageURL    string
	Legacy      *LegacyFields
	Variants    []VariantDef
}

// Validate checks the invariants every persisted product must satisfy.
func (d ProductDef) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if !d.DefaultUnit.Valid() {
		return fmt.Errorf("%w: %q has unknown default unit %q", ErrInvalidProduct, d.Name, d.DefaultUnit)
	}
	if len(d.Variants) == 0 {
		return fmt.Errorf("%w: %q", ErrNoVariants, d.Name)
	}

	defaults := 0
	for i, v := range d.Variants {
		if v.IsDefault {
			defaults++
		}
		if err := v.validate(); err != nil {
			return fmt.Errorf("%q variant %d (%s): %w", d.Name, i, v.DisplayName, err)
		}
	}
	if defaults > 1 {
		return fmt.Errorf("%w: %q has %d", ErrMultipleDefaults, d.Name, defaults)
	}
	return nil
}

func (v VariantDef) validate() error {
	switch {
	case !v.Quantity.IsPositive():
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidVariant)
	case !v.Unit.Valid():
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidVariant, v.Unit)
	case v.DisplayName == "":
		return fmt.Errorf("%w: display name is required", ErrInvalidVariant)
	case !v.RetailPrice.IsPositive():
		return fmt.Errorf("%w: retail price must be positive", ErrInvalidVariant)
	case !v.WholesalePrice.IsPositive():
		return fmt.Errorf("%w: wholesale price must be positive", ErrInvalidVariant)
	case v.MinQtyWholesale <= 0:
		return fmt.Errorf("%w: min wholesale quantity must be positive", ErrInvalidVariant)
	case v.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidVariant)
	}
	return nil
}

// EffectiveDefault returns the index of the variant whose values are mirrored onto the
// product: the one marked default, or the first one when none is marked.
func (d ProductDef) EffectiveDefault() int {
	for i, v := range d.Variants {
		if v.IsDefault {
			return i
		}
	}
	return 0
}

// Derive computes the legacy fields from the variants. The caller must have validated d.
func (d ProductDef) Derive() LegacyFields {
	def := d.Variants[d.EffectiveDefault()]
	out := LegacyFields{
		RetailPrice:     def.RetailPrice,
		WholesalePrice:  def.WholesalePrice,
		MinQtyWholesale: def.MinQtyWholesale,
	}
	for _, v := range d.Variants {
		out.Stock += v.Stock
	}
	return out
}
