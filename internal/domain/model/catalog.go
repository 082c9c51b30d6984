package model

import "time"

// ImageRef points at an externally hosted image.
type ImageRef struct {
	ID  string
	URL string
}

// Category groups products and owns a set of subcategory references.
type Category struct {
	ID            int64
	Name          string
	Description   string
	Status        ActiveStatus
	Image         ImageRef
	Subcategories []SubcategoryRef
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Subcategory is a flat refinement label attachable to categories.
type Subcategory struct {
	ID        int64
	Name      string
	Status    ActiveStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubcategoryRef is the shallow projection embedded in category reads.
type SubcategoryRef struct {
	ID   int64
	Name string
}

// CategorySummary is the typed projection returned by the category listing.
type CategorySummary struct {
	ID               int64
	Name             string
	Description      string
	Status           ActiveStatus
	ImageURL         string
	SubcategoryCount int
	Subcategories    []SubcategoryRef
}

// MostOrderedCategory names the category whose products were ordered the most.
type MostOrderedCategory struct {
	ID           int64
	Name         string
	TotalOrdered int64
}

// CategoryOverview aggregates the category listing with storefront stats.
type CategoryOverview struct {
	Categories            []CategorySummary
	TotalCategories       int64
	TotalActiveCategories int64
	MostOrdered           *MostOrderedCategory
}
