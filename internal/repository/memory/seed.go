package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
)

// SeedProducts возвращает встроенный каталог витрины. Используется, когда
// CATALOG_FILE не задан.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:              "1",
			Name:            "Classic White T-Shirt",
			Description:     "A comfortable, classic white t-shirt made from 100% organic cotton.",
			Price:           dec("24.99"),
			DiscountedPrice: decPtr("19.99"),
			Images: []string{
				"/images/products/tshirt-white-1.jpg",
				"/images/products/tshirt-white-2.jpg",
				"/images/products/tshirt-white-3.jpg",
			},
			Category:    "tshirts",
			Subcategory: "basic",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"white", "black", "gray"},
			InStock:     true,
			Featured:    true,
			IsNew:       true,
			Tags:        []string{"bestseller", "organic", "basics"},
			Specifications: map[string]string{
				"Material": "100% Organic Cotton",
				"Fit":      "Regular",
				"Care":     "Machine wash cold",
				"Origin":   "Made in Portugal",
			},
			CreatedAt: ts("2023-10-15T12:00:00Z"),
			UpdatedAt: ts("2024-01-20T10:30:00Z"),
		},
		{
			ID:          "2",
			Name:        "Slim Fit Jeans",
			Description: "Modern slim fit jeans with a slight stretch for comfort.",
			Price:       dec("69.99"),
			Images: []string{
				"/images/products/jeans-blue-1.jpg",
				"/images/products/jeans-blue-2.jpg",
			},
			Category:    "jeans",
			Subcategory: "slim",
			Sizes:       []string{"30x30", "32x30", "32x32", "34x32", "36x32"},
			Colors:      []string{"blue", "black"},
			InStock:     true,
			Tags:        []string{"bestseller", "denim"},
			Specifications: map[string]string{
				"Material": "98% Cotton, 2% Elastane",
				"Fit":      "Slim",
				"Care":     "Machine wash cold",
				"Origin":   "Imported",
			},
			CreatedAt: ts("2023-08-05T14:25:00Z"),
			UpdatedAt: ts("2023-12-10T09:15:00Z"),
		},
		{
			ID:              "3",
			Name:            "Floral Summer Dress",
			Description:     "A beautiful floral dress perfect for summer days.",
			Price:           dec("59.99"),
			DiscountedPrice: decPtr("45.99"),
			Images: []string{
				"/images/products/dress-floral-1.jpg",
				"/images/products/dress-floral-2.jpg",
			},
			Category:    "dresses",
			Subcategory: "summer",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"blue", "pink"},
			InStock:     true,
			Featured:    true,
			IsNew:       true,
			Tags:        []string{"summer", "floral"},
			Specifications: map[string]string{
				"Material": "100% Viscose",
				"Fit":      "Regular",
				"Care":     "Hand wash only",
				"Origin":   "Imported",
			},
			CreatedAt: ts("2024-01-20T11:00:00Z"),
			UpdatedAt: ts("2024-01-20T11:00:00Z"),
		},
		{
			ID:          "4",
			Name:        "Leather Jacket",
			Description: "Classic leather jacket with a modern twist.",
			Price:       dec("199.99"),
			Images: []string{
				"/images/products/jacket-leather-1.jpg",
				"/images/products/jacket-leather-2.jpg",
			},
			Category:    "jackets",
			Subcategory: "leather",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"black", "brown"},
			InStock:     true,
			Featured:    true,
			Tags:        []string{"premium", "winter"},
			Specifications: map[string]string{
				"Material": "Genuine Leather",
				"Fit":      "Regular",
				"Care":     "Professional leather cleaning only",
				"Origin":   "Made in Italy",
			},
			CreatedAt: ts("2023-09-10T15:20:00Z"),
			UpdatedAt: ts("2023-11-15T14:10:00Z"),
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}

	return t
}
