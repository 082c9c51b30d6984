package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
)

// ProductUseCase covers catalog product management.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// CreateProduct registers a product. Price is in minor units and must be
// positive.
func (u *ProductUseCase) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domainErrors.ErrInvalidInput)
	}
	if product.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrInvalidInput)
	}
	if product.Status == "" {
		product.Status = model.StatusActive
	}
	if product.Stock == "" {
		product.Stock = model.StockIn
	}
	return u.products.Create(ctx, product)
}

// GetProduct fetches a product listing by identifier.
func (u *ProductUseCase) GetProduct(ctx context.Context, id int64) (*model.ProductListing, error) {
	return u.products.GetByID(ctx, id)
}

// ListProducts returns all product listings.
func (u *ProductUseCase) ListProducts(ctx context.Context) ([]model.ProductListing, error) {
	return u.products.List(ctx)
}

// UpdateProduct applies a partial product update.
func (u *ProductUseCase) UpdateProduct(ctx context.Context, id int64, upd repository.ProductUpdate) (*model.Product, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: product name cannot be blank", domainErrors.ErrInvalidInput)
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrInvalidInput)
	}
	return u.products.Update(ctx, id, upd)
}

// DeleteProduct removes a product from the catalog. Existing order lines keep
// their weak reference and read back with empty name and zero price.
func (u *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}
