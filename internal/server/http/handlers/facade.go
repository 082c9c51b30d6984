package handlers

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/usecase"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	CreateUser(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, error)
	InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error)
	ParseToken(token string) (int64, error)
	User(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade covers category and subcategory management.
type CatalogFacade interface {
	CreateCategory(ctx context.Context, name, description string, image model.ImageRef, subcategoryIDs []int64) (*model.Category, error)
	Category(ctx context.Context, id int64) (*model.Category, error)
	CategoryOverview(ctx context.Context) (*model.CategoryOverview, error)
	UpdateCategory(ctx context.Context, id int64, upd repository.CategoryUpdate) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CreateSubcategory(ctx context.Context, name string) (*model.Subcategory, error)
	Subcategories(ctx context.Context) ([]model.Subcategory, error)
	RenameSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id int64) error
}

// ProductFacade covers catalog product management.
type ProductFacade interface {
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.ProductListing, error)
	Products(ctx context.Context) ([]model.ProductListing, error)
	UpdateProduct(ctx context.Context, id int64, upd repository.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderFacade covers checkout and the administrative order surface.
type OrderFacade interface {
	Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutResult, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context, page, size int) ([]model.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	ProductFacade
	OrderFacade
}
