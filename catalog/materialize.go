package catalog

import (
	"fmt"
	"strings"

	"fruitbasket-backend/models"
)

// Mode selects where a product's legacy fields come from.
type Mode int

const (
	// DeriveLegacy always computes the legacy fields from the variants.
	DeriveLegacy Mode = iota
	// TrustLiteral copies ProductDef.Legacy verbatim when it is set and derives otherwise.
	TrustLiteral
)

func (m Mode) String() string {
	switch m {
	case DeriveLegacy:
		return "derive"
	case TrustLiteral:
		return "literal"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a config value onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "derive":
		return DeriveLegacy, nil
	case "literal", "":
		return TrustLiteral, nil
	}
	return 0, fmt.Errorf("unknown legacy field mode %q", s)
}

// Materialize validates d and builds the Product row with its Variant children in
// definition order. IDs are left empty for the storage layer to assign.
func Materialize(d ProductDef, mode Mode) (models.Product, error) {
	if err := d.Validate(); err != nil {
		return models.Product{}, err
	}

	legacy := d.Derive()
	if mode == TrustLiteral && d.Legacy != nil {
		legacy = *d.Legacy
	}

	p := models.Product{
		Name:            d.Name,
		Description:     d.Description,
		Category:        d.Category,
		DefaultUnit:     d.DefaultUnit,
		Featured:        d.Featured,
		ImageURL:        d.ImageURL,
		RetailPrice:     legacy.RetailPrice,
		WholesalePrice:  legacy.WholesalePrice,
		MinQtyWholesale: legacy.MinQtyWholesale,
		Stock:           legacy.Stock,
		Variants:        make([]models.Variant, 0, len(d.Variants)),
	}
	for _, v := range d.Variants {
		p.Variants = append(p.Variants, models.Variant{
			Quantity:        v.Quantity,
			Unit:            v.Unit,
			DisplayName:     v.DisplayName,
			RetailPrice:     v.RetailPrice,
			WholesalePrice:  v.WholesalePrice,
			MinQtyWholesale: v.MinQtyWholesale,
			Stock:           v.Stock,
			SortOrder:       v.SortOrder,
			IsDefault:       v.IsDefault,
		})
	}
	return p, nil
}
