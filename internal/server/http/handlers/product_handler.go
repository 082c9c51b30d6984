package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/dto"
)

// ProductHandler processes catalog product requests.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	product := model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Stock:       model.StockLevel(req.Stock),
		CategoryID:  req.CategoryID,
	}
	if req.Image != nil {
		product.Image = model.ImageRef{ID: req.Image.ID, URL: req.Image.URL}
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(created))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListingResponse(listing))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	listings, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ProductListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, dto.NewProductListingResponse(&listings[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PATCH /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	upd := repository.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		status := model.ActiveStatus(*req.Status)
		upd.Status = &status
	}
	if req.Stock != nil {
		stock := model.StockLevel(*req.Stock)
		upd.Stock = &stock
	}
	if req.Image != nil {
		upd.Image = &model.ImageRef{ID: req.Image.ID, URL: req.Image.URL}
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
