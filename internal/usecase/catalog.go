package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
)

// CatalogUseCase covers category and subcategory management.
type CatalogUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(categories repository.CategoryRepository, subcategories repository.SubcategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, subcategories: subcategories}
}

// CreateCategory registers a category with optional subcategory links.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name, description string, image model.ImageRef, subcategoryIDs []int64) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domainErrors.ErrInvalidInput)
	}

	category := model.Category{
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      model.StatusActive,
		Image:       image,
	}
	return u.categories.Create(ctx, category, subcategoryIDs)
}

// GetCategory fetches a category with its subcategory references.
func (u *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

// CategoryOverview returns the full category listing with totals and the
// most-ordered category.
func (u *CatalogUseCase) CategoryOverview(ctx context.Context) (*model.CategoryOverview, error) {
	return u.categories.Overview(ctx)
}

// UpdateCategory applies a partial category update.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, upd repository.CategoryUpdate) (*model.Category, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: category name cannot be blank", domainErrors.ErrInvalidInput)
	}
	if upd.Status != nil && *upd.Status != model.StatusActive && *upd.Status != model.StatusInactive {
		return nil, fmt.Errorf("%w: unknown status %q", domainErrors.ErrInvalidInput, *upd.Status)
	}
	return u.categories.Update(ctx, id, upd)
}

// DeleteCategory removes a category and its subcategory links.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}

// CreateSubcategory registers a subcategory label.
func (u *CatalogUseCase) CreateSubcategory(ctx context.Context, name string) (*model.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subcategory name is required", domainErrors.ErrInvalidInput)
	}
	return u.subcategories.Create(ctx, name)
}

// ListSubcategories returns all subcategories.
func (u *CatalogUseCase) ListSubcategories(ctx context.Context) ([]model.Subcategory, error) {
	return u.subcategories.List(ctx)
}

// RenameSubcategory updates a subcategory's name.
func (u *CatalogUseCase) RenameSubcategory(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subcategory name is required", domainErrors.ErrInvalidInput)
	}
	return u.subcategories.Update(ctx, id, name)
}

// DeleteSubcategory removes a subcategory label.
func (u *CatalogUseCase) DeleteSubcategory(ctx context.Context, id int64) error {
	return u.subcategories.Delete(ctx, id)
}
