package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/dto"
)

// SubcategoryHandler processes subcategory management requests.
type SubcategoryHandler struct {
	facade CatalogFacade
}

// NewSubcategoryHandler creates SubcategoryHandler instance.
func NewSubcategoryHandler(facade CatalogFacade) *SubcategoryHandler {
	return &SubcategoryHandler{facade: facade}
}

// Create handles POST /api/subcategories.
func (h *SubcategoryHandler) Create(c *gin.Context) {
	var req dto.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	sub, err := h.facade.CreateSubcategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSubcategoryResponse(sub))
}

// List handles GET /api/subcategories.
func (h *SubcategoryHandler) List(c *gin.Context) {
	subs, err := h.facade.Subcategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.SubcategoryResponse, 0, len(subs))
	for i := range subs {
		out = append(out, dto.NewSubcategoryResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PATCH /api/subcategories/:id.
func (h *SubcategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	sub, err := h.facade.RenameSubcategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSubcategoryResponse(sub))
}

// Delete handles DELETE /api/subcategories/:id.
func (h *SubcategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteSubcategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
