package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"boutique/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

// Catalog is the static product fixture the storefront sells. Stock numbers
// are snapshots, not contended inventory.
var Catalog = []domain.Product{
	{
		ID:               "1",
		Name:             "Essential Black Tee",
		PriceCents:       4500,
		Description:      "A premium quality essential black t-shirt made from 100% organic cotton. Perfect for everyday wear with a comfortable fit and durable construction.",
		Category:         "Men",
		Sizes:            []string{"XS", "S", "M", "L", "XL"},
		Colors:           []string{"Black", "White", "Gray"},
		Image:            "/assets/product-tshirt.jpg",
		Images:           []string{"/assets/product-tshirt.jpg"},
		IsNew:            true,
		InStock:          25,
		Fabric:           "100% Organic Cotton",
		CareInstructions: []string{"Machine wash cold", "Tumble dry low", "Do not bleach"},
		Rating:           4.5,
		ReviewCount:      124,
	},
	{
		ID:                 "2",
		Name:               "Premium Denim",
		PriceCents:         12000,
		OriginalPriceCents: int64Ptr(15000),
		Description:        "Classic premium denim jeans with a modern fit. Made from high-quality denim with stretch for comfort and style.",
		Category:           "Men",
		Sizes:              []string{"28", "30", "32", "34", "36"},
		Colors:             []string{"Dark Blue", "Light Blue", "Black"},
		Image:              "/assets/product-jeans.jpg",
		Images:             []string{"/assets/product-jeans.jpg"},
		IsOnSale:           true,
		InStock:            15,
		Fabric:             "98% Cotton, 2% Elastane",
		CareInstructions:   []string{"Machine wash cold", "Hang to dry", "Iron on medium heat"},
		Rating:             4.7,
		ReviewCount:        89,
	},
	{
		ID:               "3",
		Name:             "Comfort Hoodie",
		PriceCents:       8500,
		Description:      "Ultra-comfortable hoodie perfect for casual wear and layering. Made with soft fleece interior for maximum warmth.",
		Category:         "Women",
		Sizes:            []string{"XS", "S", "M", "L", "XL"},
		Colors:           []string{"Gray", "Black", "Navy", "Pink"},
		Image:            "/assets/product-hoodie.jpg",
		Images:           []string{"/assets/product-hoodie.jpg"},
		InStock:          30,
		Fabric:           "80% Cotton, 20% Polyester",
		CareInstructions: []string{"Machine wash warm", "Tumble dry medium", "Do not iron decoration"},
		Rating:           4.3,
		ReviewCount:      67,
	},
	{
		ID:               "4",
		Name:             "Minimalist Jacket",
		PriceCents:       18000,
		Description:      "A sleek minimalist jacket designed for modern professionals. Water-resistant and breathable with a tailored fit.",
		Category:         "Women",
		Sizes:            []string{"XS", "S", "M", "L", "XL"},
		Colors:           []string{"Black", "Navy", "Beige"},
		Image:            "/assets/product-jacket.jpg",
		Images:           []string{"/assets/product-jacket.jpg"},
		IsNew:            true,
		InStock:          12,
		Fabric:           "Polyester blend with water-resistant coating",
		CareInstructions: []string{"Dry clean only", "Do not bleach", "Cool iron if needed"},
		Rating:           4.8,
		ReviewCount:      43,
	},
	{
		ID:               "5",
		Name:             "Classic White Shirt",
		PriceCents:       6500,
		Description:      "Timeless white shirt perfect for office or casual wear. Crisp cotton fabric with a comfortable regular fit.",
		Category:         "Men",
		Sizes:            []string{"S", "M", "L", "XL", "XXL"},
		Colors:           []string{"White", "Light Blue"},
		Image:            "/assets/product-tshirt.jpg",
		Images:           []string{"/assets/product-tshirt.jpg"},
		InStock:          20,
		Fabric:           "100% Cotton",
		CareInstructions: []string{"Machine wash cold", "Iron while damp", "Dry clean recommended"},
		Rating:           4.4,
		ReviewCount:      156,
	},
	{
		ID:                 "6",
		Name:               "Casual Sneakers",
		PriceCents:         9500,
		OriginalPriceCents: int64Ptr(11000),
		Description:        "Comfortable everyday sneakers with premium leather upper and cushioned sole for all-day comfort.",
		Category:           "Accessories",
		Sizes:              []string{"7", "8", "9", "10", "11", "12"},
		Colors:             []string{"White", "Black", "Gray"},
		Image:              "/assets/product-jacket.jpg",
		Images:             []string{"/assets/product-jacket.jpg"},
		IsOnSale:           true,
		InStock:            18,
		Fabric:             "Leather upper, rubber sole",
		CareInstructions:   []string{"Wipe clean with damp cloth", "Air dry", "Use leather conditioner"},
		Rating:             4.6,
		ReviewCount:        92,
	},
}

// Apply inserts the catalog fixture. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range Catalog {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, price_cents, original_price_cents, description, category,
	sizes, colors, image, images, is_new, is_on_sale, in_stock, fabric,
	care_instructions, rating, review_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    price_cents = EXCLUDED.price_cents,
    original_price_cents = EXCLUDED.original_price_cents,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    sizes = EXCLUDED.sizes,
    colors = EXCLUDED.colors,
    image = EXCLUDED.image,
    images = EXCLUDED.images,
    is_new = EXCLUDED.is_new,
    is_on_sale = EXCLUDED.is_on_sale,
    in_stock = EXCLUDED.in_stock,
    fabric = EXCLUDED.fabric,
    care_instructions = EXCLUDED.care_instructions,
    rating = EXCLUDED.rating,
    review_count = EXCLUDED.review_count
`
	_, err := pool.Exec(ctx, q,
		p.ID, p.Name, p.PriceCents, p.OriginalPriceCents, p.Description, p.Category,
		p.Sizes, p.Colors, p.Image, p.Images, p.IsNew, p.IsOnSale, p.InStock, p.Fabric,
		p.CareInstructions, p.Rating, p.ReviewCount)
	return err
}
