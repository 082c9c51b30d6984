package dto

import (
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// ImagePayload carries an externally hosted image reference.
type ImagePayload struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCategoryRequest registers a category.
type CreateCategoryRequest struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Image          *ImagePayload `json:"image"`
	SubcategoryIDs []int64       `json:"subcategory_ids"`
}

// UpdateCategoryRequest mutates a category; omitted fields stay untouched.
type UpdateCategoryRequest struct {
	Name           *string       `json:"name"`
	Description    *string       `json:"description"`
	Status         *string       `json:"status"`
	Image          *ImagePayload `json:"image"`
	SubcategoryIDs []int64       `json:"subcategory_ids"`
}

// SubcategoryRefPayload is the shallow link embedded in category responses.
type SubcategoryRefPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse is the full category projection.
type CategoryResponse struct {
	ID            int64                   `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Status        string                  `json:"status"`
	Image         ImagePayload            `json:"image"`
	Subcategories []SubcategoryRefPayload `json:"subcategories"`
}

// CategorySummaryResponse is one row of the category overview.
type CategorySummaryResponse struct {
	ID               int64                   `json:"id"`
	Name             string                  `json:"name"`
	Description      string                  `json:"description"`
	Status           string                  `json:"status"`
	ImageURL         string                  `json:"image_url"`
	SubcategoryCount int                     `json:"subcategory_count"`
	Subcategories    []SubcategoryRefPayload `json:"subcategories"`
}

// MostOrderedResponse names the category with the highest ordered quantity.
type MostOrderedResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TotalOrdered int64  `json:"total_ordered"`
}

// CategoryOverviewResponse aggregates the category listing with stats.
type CategoryOverviewResponse struct {
	Categories  []CategorySummaryResponse `json:"categories"`
	Total       int64                     `json:"total"`
	TotalActive int64                     `json:"total_active"`
	MostOrdered *MostOrderedResponse      `json:"most_ordered,omitempty"`
}

// SubcategoryRequest creates or renames a subcategory.
type SubcategoryRequest struct {
	Name string `json:"name"`
}

// SubcategoryResponse is the full subcategory projection.
type SubcategoryResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// NewCategoryResponse maps a domain category to its response form.
func NewCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Status:        string(c.Status),
		Image:         ImagePayload{ID: c.Image.ID, URL: c.Image.URL},
		Subcategories: newSubcategoryRefs(c.Subcategories),
	}
}

// NewCategoryOverviewResponse maps the overview aggregate.
func NewCategoryOverviewResponse(o *model.CategoryOverview) CategoryOverviewResponse {
	resp := CategoryOverviewResponse{
		Categories:  make([]CategorySummaryResponse, 0, len(o.Categories)),
		Total:       o.TotalCategories,
		TotalActive: o.TotalActiveCategories,
	}
	for _, c := range o.Categories {
		resp.Categories = append(resp.Categories, CategorySummaryResponse{
			ID:               c.ID,
			Name:             c.Name,
			Description:      c.Description,
			Status:           string(c.Status),
			ImageURL:         c.ImageURL,
			SubcategoryCount: c.SubcategoryCount,
			Subcategories:    newSubcategoryRefs(c.Subcategories),
		})
	}
	if o.MostOrdered != nil {
		resp.MostOrdered = &MostOrderedResponse{
			ID:           o.MostOrdered.ID,
			Name:         o.MostOrdered.Name,
			TotalOrdered: o.MostOrdered.TotalOrdered,
		}
	}
	return resp
}

// NewSubcategoryResponse maps a domain subcategory to its response form.
func NewSubcategoryResponse(s *model.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{ID: s.ID, Name: s.Name, Status: string(s.Status)}
}

func newSubcategoryRefs(refs []model.SubcategoryRef) []SubcategoryRefPayload {
	out := make([]SubcategoryRefPayload, 0, len(refs))
	for _, ref := range refs {
		out = append(out, SubcategoryRefPayload{ID: ref.ID, Name: ref.Name})
	}
	return out
}
