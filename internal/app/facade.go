package app

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/usecase"
)

// StorefrontFacade is the single entry point the HTTP layer talks to.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	products *usecase.ProductUseCase
	orders   *usecase.OrderUseCase
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, products *usecase.ProductUseCase, orders *usecase.OrderUseCase) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, catalog: catalog, products: products, orders: orders}
}

func (f *StorefrontFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *StorefrontFacade) CreateUser(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, error) {
	return f.auth.CreateUser(ctx, name, email, password, role)
}

func (f *StorefrontFacade) InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error) {
	return f.auth.InviteUser(ctx, name, email, role)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StorefrontFacade) CreateCategory(ctx context.Context, name, description string, image model.ImageRef, subcategoryIDs []int64) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name, description, image, subcategoryIDs)
}

func (f *StorefrontFacade) Category(ctx context.Context, id int64) (*model.Category, error) {
	return f.catalog.GetCategory(ctx, id)
}

func (f *StorefrontFacade) CategoryOverview(ctx context.Context) (*model.CategoryOverview, error) {
	return f.catalog.CategoryOverview(ctx)
}

func (f *StorefrontFacade) UpdateCategory(ctx context.Context, id int64, upd repository.CategoryUpdate) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, id, upd)
}

func (f *StorefrontFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StorefrontFacade) CreateSubcategory(ctx context.Context, name string) (*model.Subcategory, error) {
	return f.catalog.CreateSubcategory(ctx, name)
}

func (f *StorefrontFacade) Subcategories(ctx context.Context) ([]model.Subcategory, error) {
	return f.catalog.ListSubcategories(ctx)
}

func (f *StorefrontFacade) RenameSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	return f.catalog.RenameSubcategory(ctx, id, name)
}

func (f *StorefrontFacade) DeleteSubcategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteSubcategory(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.products.CreateProduct(ctx, product)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.ProductListing, error) {
	return f.products.GetProduct(ctx, id)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.ProductListing, error) {
	return f.products.ListProducts(ctx)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, id int64, upd repository.ProductUpdate) (*model.Product, error) {
	return f.products.UpdateProduct(ctx, id, upd)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.products.DeleteProduct(ctx, id)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	return f.orders.Checkout(ctx, input)
}

func (f *StorefrontFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetOrder(ctx, id)
}

func (f *StorefrontFacade) Orders(ctx context.Context, page, size int) ([]model.Order, int64, error) {
	return f.orders.ListOrders(ctx, page, size)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *StorefrontFacade) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	return f.auth.EnsureAdmin(ctx, name, email, password)
}
