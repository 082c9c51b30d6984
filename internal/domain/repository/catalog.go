package repository

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// CategoryUpdate carries the mutable category fields; nil means leave as is.
type CategoryUpdate struct {
	Name           *string
	Description    *string
	Status         *model.ActiveStatus
	Image          *model.ImageRef
	SubcategoryIDs []int64
}

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category model.Category, subcategoryIDs []int64) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Overview(ctx context.Context) (*model.CategoryOverview, error)
	Update(ctx context.Context, id int64, upd CategoryUpdate) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

// SubcategoryRepository describes persistence operations for subcategories.
type SubcategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Subcategory, error)
	List(ctx context.Context) ([]model.Subcategory, error)
	Update(ctx context.Context, id int64, name string) (*model.Subcategory, error)
	Delete(ctx context.Context, id int64) error
}
