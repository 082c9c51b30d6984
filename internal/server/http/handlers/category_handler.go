package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/dto"
)

// CategoryHandler processes category management requests.
type CategoryHandler struct {
	facade CatalogFacade
}

// NewCategoryHandler creates CategoryHandler instance.
func NewCategoryHandler(facade CatalogFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	var image model.ImageRef
	if req.Image != nil {
		image = model.ImageRef{ID: req.Image.ID, URL: req.Image.URL}
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name, req.Description, image, req.SubcategoryIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Overview handles GET /api/categories.
func (h *CategoryHandler) Overview(c *gin.Context) {
	overview, err := h.facade.CategoryOverview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryOverviewResponse(overview))
}

// Update handles PATCH /api/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	upd := repository.CategoryUpdate{
		Name:           req.Name,
		Description:    req.Description,
		SubcategoryIDs: req.SubcategoryIDs,
	}
	if req.Status != nil {
		status := model.ActiveStatus(*req.Status)
		upd.Status = &status
	}
	if req.Image != nil {
		upd.Image = &model.ImageRef{ID: req.Image.ID, URL: req.Image.URL}
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
