package dto

import (
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// CreateProductRequest registers a product. Price is in minor currency units.
type CreateProductRequest struct {
	Name        string        `json:"name"`
	Price       int64         `json:"price"`
	Description string        `json:"description"`
	Stock       string        `json:"stock"`
	Image       *ImagePayload `json:"image"`
	CategoryID  int64         `json:"category_id"`
}

// UpdateProductRequest mutates a product; omitted fields stay untouched.
type UpdateProductRequest struct {
	Name        *string       `json:"name"`
	Price       *int64        `json:"price"`
	Description *string       `json:"description"`
	Status      *string       `json:"status"`
	Stock       *string       `json:"stock"`
	Image       *ImagePayload `json:"image"`
	CategoryID  *int64        `json:"category_id"`
}

// ProductResponse is the raw product projection.
type ProductResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Price       int64        `json:"price"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Stock       string       `json:"stock"`
	Image       ImagePayload `json:"image"`
	CategoryID  int64        `json:"category_id,omitempty"`
}

// ProductListingResponse is the read projection enriched with category names.
type ProductListingResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// NewProductResponse maps a domain product to its response form.
func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Status:      string(p.Status),
		Stock:       string(p.Stock),
		Image:       ImagePayload{ID: p.Image.ID, URL: p.Image.URL},
		CategoryID:  p.CategoryID,
	}
}

// NewProductListingResponse maps a listing projection.
func NewProductListingResponse(p *model.ProductListing) ProductListingResponse {
	return ProductListingResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Status:      string(p.Status),
		ImageURL:    p.ImageURL,
		Category:    p.CategoryName,
		Subcategory: p.SubcategoryName,
	}
}
