// Package shop is the catalog and order core behind the shopping
// assistant. The catalog is immutable reference data; orders are the only
// thing this package writes.
package shop

import "strings"

// Product is one purchasable item. Prices are whole rupees.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Color       string   `json:"color,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	InStock     bool     `json:"in_stock"`
}

// HasSize reports whether the product comes in the given size. Products
// without a size list accept any size.
func (p Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return true
	}
	norm := normalizeSize(size)
	for _, s := range p.Sizes {
		if normalizeSize(s) == norm {
			return true
		}
	}
	return false
}

func normalizeSize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ProductFilter narrows a catalog listing. Zero-valued fields are ignored;
// provided fields must all match.
type ProductFilter struct {
	Category   string
	MaxPrice   int
	Color      string
	SearchTerm string
}

// Matches reports whether the product passes every provided predicate.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Color != "" && !strings.EqualFold(f.Color, p.Color) {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	return true
}

// DefaultCatalog returns the sample products seeded on first run. Seeding
// is a bootstrap concern; the service itself never writes the catalog.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          "mug-001",
			Name:        "Monsoon Ceramic Mug",
			Description: "Hand-glazed 350ml ceramic mug in deep monsoon blue",
			Price:       800,
			Category:    "mug",
			Color:       "blue",
			InStock:     true,
		},
		{
			ID:          "mug-002",
			Name:        "Terracotta Chai Mug",
			Description: "Earthy terracotta mug made for cutting chai",
			Price:       650,
			Category:    "mug",
			Color:       "brown",
			InStock:     true,
		},
		{
			ID:          "tee-001",
			Name:        "Bombay Local Tee",
			Description: "Soft cotton tee with a Mumbai local train print",
			Price:       1200,
			Category:    "t-shirt",
			Color:       "black",
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true,
		},
		{
			ID:          "tee-002",
			Name:        "Filter Coffee Tee",
			Description: "Cream cotton tee celebrating south Indian filter coffee",
			Price:       1100,
			Category:    "t-shirt",
			Color:       "cream",
			Sizes:       []string{"S", "M", "L"},
			InStock:     false,
		},
		{
			ID:          "hood-001",
			Name:        "Himalayan Fleece Hoodie",
			Description: "Heavyweight fleece hoodie for hill-station winters",
			Price:       2400,
			Category:    "hoodie",
			Color:       "grey",
			Sizes:       []string{"M", "L", "XL"},
			InStock:     true,
		},
		{
			ID:          "tote-001",
			Name:        "Sabzi Mandi Tote",
			Description: "Reusable canvas tote sized for a week of vegetables",
			Price:       450,
			Category:    "bag",
			Color:       "green",
			InStock:     true,
		},
	}
}
