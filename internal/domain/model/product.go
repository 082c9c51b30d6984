package model

import "time"

// StockLevel mirrors the storefront stock labels.
type StockLevel string

const (
	StockIn  StockLevel = "In Stock"
	StockOut StockLevel = "Out of Stock"
	StockLow StockLevel = "Low in Stock"
)

// Product is a catalog item. Price is kept in minor currency units (kobo)
// so monetary comparisons stay exact.
type Product struct {
	ID          int64
	Name        string
	Price       int64
	Description string
	Status      ActiveStatus
	Stock       StockLevel
	Image       ImageRef
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductListing is the typed projection returned by product reads: the raw
// product enriched with its category and first subcategory names.
type ProductListing struct {
	ID              int64
	Name            string
	Price           int64
	Description     string
	Status          ActiveStatus
	ImageURL        string
	CategoryName    string
	SubcategoryName string
}
