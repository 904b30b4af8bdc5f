package catalog

import (
	"fruitbasket-backend/models"

	"github.com/shopspring/decimal"
)

func inr(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// InitialCatalog is the product list used to bootstrap an empty store. A new slice is
// built on every call so callers can never mutate the shared definition.
func InitialCatalog() []ProductDef {
	return []ProductDef{
		{
			Name:        "Fresh Red Apples (Shimla)",
			Description: "Crisp, juicy red apples from the orchards of Shimla.",
			Category:    "Apples",
			DefaultUnit: models.UnitKilogram,
			Featured:    true,
			ImageURL:    "/images/products/apple-shimla.jpg",
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(80), WholesalePrice: inr(70), MinQtyWholesale: 10, Stock: 50, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(150), WholesalePrice: inr(130), MinQtyWholesale: 10, Stock: 100, SortOrder: 1, IsDefault: true},
				{Quantity: qty(2), Unit: models.UnitKilogram, DisplayName: "2 kg", RetailPrice: inr(290), WholesalePrice: inr(250), MinQtyWholesale: 5, Stock: 40, SortOrder: 2},
			},
		},
		{
			Name:        "Green Apples (Granny Smith)",
			Description: "Tart green apples, great for salads and juicing.",
			Category:    "Apples",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/apple-green.jpg",
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(120), WholesalePrice: inr(105), MinQtyWholesale: 10, Stock: 30, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(230), WholesalePrice: inr(200), MinQtyWholesale: 10, Stock: 45, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Robusta Bananas",
			Description: "Naturally ripened robusta bananas, sold by the bunch.",
			Category:    "Bananas",
			DefaultUnit: models.UnitDozen,
			ImageURL:    "/images/products/banana-robusta.jpg",
			Variants: []VariantDef{
				{Quantity: qty(6), Unit: models.UnitPiece, DisplayName: "6 pcs", RetailPrice: inr(35), WholesalePrice: inr(30), MinQtyWholesale: 20, Stock: 80, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitDozen, DisplayName: "1 dozen", RetailPrice: inr(60), WholesalePrice: inr(52), MinQtyWholesale: 10, Stock: 120, SortOrder: 1, IsDefault: true},
				{Quantity: qty(2), Unit: models.UnitDozen, DisplayName: "2 dozen", RetailPrice: inr(115), WholesalePrice: inr(100), MinQtyWholesale: 5, Stock: 40, SortOrder: 2},
			},
		},
		{
			Name:        "Alphonso Mangoes (Ratnagiri)",
			Description: "GI-tagged Ratnagiri Alphonso, carbide-free and hand picked.",
			Category:    "Tropical",
			DefaultUnit: models.UnitDozen,
			Featured:    true,
			ImageURL:    "/images/products/mango-alphonso.jpg",
			Variants: []VariantDef{
				{Quantity: qty(6), Unit: models.UnitPiece, DisplayName: "6 pcs", RetailPrice: inr(450), WholesalePrice: inr(400), MinQtyWholesale: 5, Stock: 25, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitDozen, DisplayName: "1 dozen", RetailPrice: inr(850), WholesalePrice: inr(760), MinQtyWholesale: 5, Stock: 30, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Nagpur Oranges",
			Description: "Sweet and tangy oranges from Vidarbha.",
			Category:    "Citrus",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/orange-nagpur.jpg",
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(90), WholesalePrice: inr(78), MinQtyWholesale: 10, Stock: 70, SortOrder: 0, IsDefault: true},
				{Quantity: qty(3), Unit: models.UnitKilogram, DisplayName: "3 kg", RetailPrice: inr(260), WholesalePrice: inr(225), MinQtyWholesale: 5, Stock: 20, SortOrder: 1},
			},
		},
		{
			Name:        "Mosambi (Sweet Lime)",
			Description: "Juicy sweet lime, ideal for fresh juice.",
			Category:    "Citrus",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/mosambi.jpg",
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(70), WholesalePrice: inr(60), MinQtyWholesale: 10, Stock: 90, SortOrder: 0},
				{Quantity: qty(2), Unit: models.UnitKilogram, DisplayName: "2 kg", RetailPrice: inr(135), WholesalePrice: inr(115), MinQtyWholesale: 5, Stock: 35, SortOrder: 1},
			},
		},
		{
			Name:        "Pomegranate (Bhagwa)",
			Description: "Deep red arils with a sweet finish.",
			Category:    "Seasonal",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/pomegranate.jpg",
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(110), WholesalePrice: inr(95), MinQtyWholesale: 10, Stock: 40, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(210), WholesalePrice: inr(185), MinQtyWholesale: 10, Stock: 60, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Kiran Watermelon",
			Description: "Small, seedless-style watermelon with crunchy red flesh.",
			Category:    "Melons",
			DefaultUnit: models.UnitPiece,
			ImageURL:    "/images/products/watermelon.jpg",
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitPiece, DisplayName: "1 pc (2-3 kg)", RetailPrice: inr(60), WholesalePrice: inr(50), MinQtyWholesale: 10, Stock: 50, SortOrder: 0, IsDefault: true},
			},
		},
		{
			Name:        "Muskmelon",
			Description: "Fragrant, honey-sweet kharbuja.",
			Category:    "Melons",
			DefaultUnit: models.UnitPiece,
			ImageURL:    "/images/products/muskmelon.jpg",
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitPiece, DisplayName: "1 pc (~1 kg)", RetailPrice: inr(55), WholesalePrice: inr(45), MinQtyWholesale: 10, Stock: 30, SortOrder: 0},
			},
		},
		{
			Name:        "Black Seedless Grapes",
			Description: "Nashik black grapes, seedless and sweet.",
			Category:    "Grapes",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/grapes-black.jpg",
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(75), WholesalePrice: inr(65), MinQtyWholesale: 10, Stock: 60, SortOrder: 0, IsDefault: true},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(140), WholesalePrice: inr(120), MinQtyWholesale: 10, Stock: 40, SortOrder: 1},
			},
		},
		{
			Name:        "Papaya (Red Lady)",
			Description: "Ripe red lady papaya, ready to eat.",
			Category:    "Tropical",
			DefaultUnit: models.UnitPiece,
			ImageURL:    "/images/products/papaya.jpg",
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitPiece, DisplayName: "1 pc (~1.2 kg)", RetailPrice: inr(50), WholesalePrice: inr(42), MinQtyWholesale: 10, Stock: 45, SortOrder: 0, IsDefault: true},
			},
		},
		{
			Name:        "Guava (Allahabad Safeda)",
			Description: "White-fleshed guava with a sweet aroma.",
			Category:    "Seasonal",
			DefaultUnit: models.UnitKilogram,
			ImageURL:    "/images/products/guava.jpg",
			Variants: []VariantDef{
				{Quantity: qty(500), Unit: models.UnitGram, DisplayName: "500 g", RetailPrice: inr(45), WholesalePrice: inr(38), MinQtyWholesale: 10, Stock: 50, SortOrder: 0},
				{Quantity: qty(1), Unit: models.UnitKilogram, DisplayName: "1 kg", RetailPrice: inr(85), WholesalePrice: inr(72), MinQtyWholesale: 10, Stock: 70, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Kiwi (Imported)",
			Description: "Green kiwi fruit rich in vitamin C.",
			Category:    "Exotic",
			DefaultUnit: models.UnitPiece,
			Featured:    true,
			ImageURL:    "/images/products/kiwi.jpg",
			Variants: []VariantDef{
				{Quantity: qty(3), Unit: models.UnitPiece, DisplayName: "3 pcs", RetailPrice: inr(99), WholesalePrice: inr(85), MinQtyWholesale: 10, Stock: 40, SortOrder: 0},
				{Quantity: qty(6), Unit: models.UnitPiece, DisplayName: "6 pcs", RetailPrice: inr(189), WholesalePrice: inr(165), MinQtyWholesale: 5, Stock: 30, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Dragon Fruit",
			Description: "Pink-skinned dragon fruit with white flesh.",
			Category:    "Exotic",
			DefaultUnit: models.UnitPiece,
			ImageURL:    "/images/products/dragon-fruit.jpg",
			Variants: []VariantDef{
				{Quantity: qty(1), Unit: models.UnitPiece, DisplayName: "1 pc", RetailPrice: inr(90), WholesalePrice: inr(78), MinQtyWholesale: 10, Stock: 25, SortOrder: 0},
				{Quantity: qty(2), Unit: models.UnitPiece, DisplayName: "2 pcs", RetailPrice: inr(170), WholesalePrice: inr(150), MinQtyWholesale: 5, Stock: 20, SortOrder: 1, IsDefault: true},
			},
		},
		{
			Name:        "Strawberries (Mahabaleshwar)",
			Description: "Fresh strawberries from the Mahabaleshwar hills.",
			Category:    "Berries",
			DefaultUnit: models.UnitGram,
			Featured:    true,
			ImageURL:    "/images/products/strawberry.jpg",
			Variants: []VariantDef{
				{Quantity: qty(200), Unit: models.UnitGram, DisplayName: "200 g", RetailPrice: inr(80), WholesalePrice: inr(70), MinQtyWholesale: 10, Stock: 35, SortOrder: 0, IsDefault: true},
				{Quantity: qty(400), Unit: models.UnitGram, DisplayName: "400 g", RetailPrice: inr(150), WholesalePrice: inr(130), MinQtyWholesale: 5, Stock: 20, SortOrder: 1},
			},
		},
	}
}
