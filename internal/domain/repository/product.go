package repository

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// ProductUpdate carries the mutable product fields; nil means leave as is.
type ProductUpdate struct {
	Name        *string
	Price       *int64
	Description *string
	Status      *model.ActiveStatus
	Stock       *model.StockLevel
	Image       *model.ImageRef
	CategoryID  *int64
}

// ProductRepository describes persistence operations for catalog products.
// GetByIDs is the batch lookup the checkout validator depends on: it returns
// only the products that exist, in no particular order.
type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.ProductListing, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	List(ctx context.Context) ([]model.ProductListing, error)
	Update(ctx context.Context, id int64, upd ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
