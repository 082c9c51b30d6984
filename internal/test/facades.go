package test

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
)

// StorefrontFacadeStub simulates the application facade for HTTP layer tests.
// Every method delegates to its override when set and falls back to a benign
// default otherwise. Checkout is deliberately absent: it would pull the
// usecase package into this one and close an import loop through the packages
// whose tests rely on these stubs, so HTTP test packages wrap the stub and
// supply it themselves.
type StorefrontFacadeStub struct {
	LoginFn      func(context.Context, string, string) (*model.User, string, error)
	CreateUserFn func(context.Context, string, string, string, model.UserRole) (*model.User, error)
	InviteUserFn func(context.Context, string, string, model.UserRole) (*model.User, error)
	ParseFn      func(string) (int64, error)
	UserFn       func(context.Context, int64) (*model.User, error)

	CreateCategoryFn    func(context.Context, string, string, model.ImageRef, []int64) (*model.Category, error)
	CategoryFn          func(context.Context, int64) (*model.Category, error)
	CategoryOverviewFn  func(context.Context) (*model.CategoryOverview, error)
	UpdateCategoryFn    func(context.Context, int64, repository.CategoryUpdate) (*model.Category, error)
	DeleteCategoryFn    func(context.Context, int64) error
	CreateSubcategoryFn func(context.Context, string) (*model.Subcategory, error)
	SubcategoriesFn     func(context.Context) ([]model.Subcategory, error)
	RenameSubcategoryFn func(context.Context, int64, string) (*model.Subcategory, error)
	DeleteSubcategoryFn func(context.Context, int64) error

	CreateProductFn func(context.Context, model.Product) (*model.Product, error)
	ProductFn       func(context.Context, int64) (*model.ProductListing, error)
	ProductsFn      func(context.Context) ([]model.ProductListing, error)
	UpdateProductFn func(context.Context, int64, repository.ProductUpdate) (*model.Product, error)
	DeleteProductFn func(context.Context, int64) error

	OrderFn             func(context.Context, int64) (*model.Order, error)
	OrdersFn            func(context.Context, int, int) ([]model.Order, int64, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

func (s *StorefrontFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.UserRoleAdmin, Status: model.StatusActive}, "token", nil
}

func (s *StorefrontFacadeStub) CreateUser(ctx context.Context, name, email, password string, role model.UserRole) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, name, email, password, role)
	}
	return &model.User{ID: 2, Name: name, Email: email, Role: role, Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) InviteUser(ctx context.Context, name, email string, role model.UserRole) (*model.User, error) {
	if s.InviteUserFn != nil {
		return s.InviteUserFn(ctx, name, email, role)
	}
	return &model.User{ID: 3, Name: name, Email: email, Role: role, Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

func (s *StorefrontFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.UserRoleAdmin, Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) CreateCategory(ctx context.Context, name, description string, image model.ImageRef, subcategoryIDs []int64) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, description, image, subcategoryIDs)
	}
	return &model.Category{ID: 1, Name: name, Description: description, Status: model.StatusActive, Image: image}, nil
}

func (s *StorefrontFacadeStub) Category(ctx context.Context, id int64) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "Meals", Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) CategoryOverview(ctx context.Context) (*model.CategoryOverview, error) {
	if s.CategoryOverviewFn != nil {
		return s.CategoryOverviewFn(ctx)
	}
	return &model.CategoryOverview{}, nil
}

func (s *StorefrontFacadeStub) UpdateCategory(ctx context.Context, id int64, upd repository.CategoryUpdate) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, upd)
	}
	return &model.Category{ID: id, Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

func (s *StorefrontFacadeStub) CreateSubcategory(ctx context.Context, name string) (*model.Subcategory, error) {
	if s.CreateSubcategoryFn != nil {
		return s.CreateSubcategoryFn(ctx, name)
	}
	return &model.Subcategory{ID: 1, Name: name, Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) Subcategories(ctx context.Context) ([]model.Subcategory, error) {
	if s.SubcategoriesFn != nil {
		return s.SubcategoriesFn(ctx)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) RenameSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	if s.RenameSubcategoryFn != nil {
		return s.RenameSubcategoryFn(ctx, id, name)
	}
	return &model.Subcategory{ID: id, Name: name, Status: model.StatusActive}, nil
}

func (s *StorefrontFacadeStub) DeleteSubcategory(ctx context.Context, id int64) error {
	if s.DeleteSubcategoryFn != nil {
		return s.DeleteSubcategoryFn(ctx, id)
	}
	return nil
}

func (s *StorefrontFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = 1
	return &product, nil
}

func (s *StorefrontFacadeStub) Product(ctx context.Context, id int64) (*model.ProductListing, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.ProductListing{ID: id, Name: "Jollof Rice", Price: 250000}, nil
}

func (s *StorefrontFacadeStub) Products(ctx context.Context) ([]model.ProductListing, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) UpdateProduct(ctx context.Context, id int64, upd repository.ProductUpdate) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, upd)
	}
	return &model.Product{ID: id}, nil
}

func (s *StorefrontFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s *StorefrontFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (s *StorefrontFacadeStub) Orders(ctx context.Context, page, size int) ([]model.Order, int64, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, page, size)
	}
	return nil, 0, nil
}

func (s *StorefrontFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}
