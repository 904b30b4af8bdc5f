package catalog

import "fruitbasket-backend/models"

// IndiaCatalog is the curated list the admin reseed installs. It is maintained separately
// from InitialCatalog and the two are allowed to differ. Legacy values are authored by
// hand; the Anar entry mirrors its first pack rather than the default one.
func IndiaCatalog() []ProductDef {
	return []ProductDef{
		{
			Name:        "Shimla Apples",
			Description: "Himachal apples, crisp and sweet. Packed the day they are picked.",
			Category:    "Apples",
			DefaultUnit: models.UnitKilogram,
			Featured:    true,
			ImageURL:    "/images/products/in/shimla-apple.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(160), WholesalePrice: inr(140), MinQtyWholesale: 10, Stock: 150},
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(85), WholesalePrice: inr(75), MinQtyWholesale: 10, Stock: 40, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(160), WholesalePrice: inr(140), MinQtyWholesale: 10, Stock: 80, SortOrder: 1, IsDefault: true},
				{Quantity: qty(2), Unit: models.UnitKilogram, DisplayName: "2 kg", RetailPrice: inr(300), WholesalePrice: inr(265), MinQtyWholesale: 5, Stock: 30, SortOrder: 2},
			},
		},
		{
			Name:        "Alphonso Mango (Devgad)",
			Description: "Devgad hapus, naturally ripened in hay.",
			Category:    "Tropical",
			DefaultUnit: models.UnitDozen,
			Featured:    true,
			ImageURL:    "/images/products/in/devgad-alphonso.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(949), WholesalePrice: inr(860), MinQtyWholesale: 5, Stock: 45},
			Variants: []VariantDef{
				{Quantity: qty(6), Unit: models.UnitPiece, DisplayName: "6 pcs", RetailPrice: inr(499), WholesalePrice: inr(450), MinQtyWholesale: 5, Stock: 20, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitDozen, DisplayName: "1 dozen", RetailPrice: inr(949), WholesalePrice: inr(860), MinQtyWholesale: 5, Stock: 25, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Nagpur Santra",
			Description: "Loose-skinned Nagpur oranges, easy to peel.",
			Category:    "Citrus",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/in/nagpur-santra.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(95), WholesalePrice: inr(82), MinQtyWholesale: 10, Stock: 85},
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(95), WholesalePrice: inr(82), MinQtyWholesale: 10, Stock: 60, SortOrder: 0, IsDefault: true},
				{Quantity: qty(2), Unit: models.UnitKilogram, DisplayName: "2 kg", RetailPrice: inr(180), WholesalePrice: inr(158), MinQtyWholesale: 5, Stock: 25, SortOrder: 1},
			},
		},
		{
			Name:        "Elaichi Banana",
			Description: "Small, fragrant yelakki bananas from Karnataka.",
			Category:    "Bananas",
			DefaultUnit: models.UnitDozen,
			ImageURL:    "/images/products/in/elaichi-banana.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(85), WholesalePrice: inr(72), MinQtyWholesale: 10, Stock: 120},
			Variants: []VariantDef{
				{Quantity: qty(6), Unit: models.UnitPiece, DisplayName: "6 pcs", RetailPrice: inr(45), WholesalePrice: inr(38), MinQtyWholesale: 20, Stock: 50, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitDozen, DisplayName: "1 dozen", RetailPrice: inr(85), WholesalePrice: inr(72), MinQtyWholesale: 10, Stock: 70, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Anar (Bhagwa Pomegranate)",
			Description: "Solapur bhagwa anar with ruby red arils.",
			Category:    "Seasonal",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/in/anar.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(120), WholesalePrice: inr(105), MinQtyWholesale: 10, Stock: 75},
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(120), WholesalePrice: inr(105), MinQtyWholesale: 10, Stock: 30, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(230), WholesalePrice: inr(200), MinQtyWholesale: 10, Stock: 45, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Chikoo (Sapota)",
			Description: "Soft, malty sapota from Dahanu.",
			Category:    "Seasonal",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/in/chikoo.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(60), WholesalePrice: inr(52), MinQtyWholesale: 10, Stock: 70},
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(60), WholesalePrice: inr(52), MinQtyWholesale: 10, Stock: 40, SortOrder: 0, IsDefault: true},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(115), WholesalePrice: inr(100), MinQtyWholesale: 10, Stock: 30, SortOrder: 1},
			},
		},
		{
			Name:        "Jamun",
			Description: "Wild black jamun, available for a few weeks each monsoon.",
			Category:    "Berries",
			DefaultUnit: models.UnitGram,
			ImageURL:    "/images/products/in/jamun.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(70), WholesalePrice: inr(60), MinQtyWholesale: 10, Stock: 50},
			Variants: []VariantDef{
				{Quantity: qty(250), Unit: models.UnitGram, DisplayName: "250 g", RetailPrice: inr(70), WholesalePrice: inr(60), MinQtyWholesale: 10, Stock: 30, SortOrder: 0, IsDefault: true},
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(130), WholesalePrice: inr(112), MinQtyWholesale: 5, Stock: 20, SortOrder: 1},
			},
		},
		{
			Name:        "Lychee (Muzaffarpur)",
			Description: "Shahi lychee from Muzaffarpur, juicy and aromatic.",
			Category:    "Seasonal",
			DefaultUnit: models.UnitKilogram,
			Featured:    true,
			ImageURL:    "/images/products/in/lychee.jpg",
			Legacy:      &LegacyFields{RetailPrice: inr(270), WholesalePrice: inr(235), MinQtyWholesale: 5, Stock: 55},
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(140), WholesalePrice: inr(120), MinQtyWholesale: 10, Stock: 25, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(270), WholesalePrice: inr(235), MinQtyWholesale: 5, Stock: 30, SortOrder: 1, IsDefault: true},
			},
		},
	}
}
