package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/dto"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/usecase"
)

// idempotencyHeader carries the client-generated checkout deduplication key.
const idempotencyHeader = "Idempotency-Key"

// OrderHandler processes checkout and the administrative order surface.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders. Resubmitting with the same
// Idempotency-Key returns the first order without a second gateway call.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	input := usecase.CheckoutInput{
		Amount:      req.Amount,
		Email:       req.Email,
		Address:     req.Address,
		Phone:       req.Phone,
		PaymentType: model.PaymentType(req.PaymentType),
		Metadata:    req.Metadata,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, model.OrderDraftItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if raw := strings.TrimSpace(c.GetHeader(idempotencyHeader)); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "idempotency key must be a UUID"})
			return
		}
		normalized := key.String()
		input.IdempotencyKey = &normalized
	}

	result, err := h.facade.Checkout(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.CheckoutResponse{
		Message: "Payment initialized",
		Order:   dto.NewOrderResponse(result.Order),
	}
	if result.Replayed {
		resp.Message = "Order already processed"
	}
	if result.Payment != nil {
		resp.Data = result.Payment.Raw
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// List handles GET /api/orders with page/size query parameters.
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	orders, total, err := h.facade.Orders(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
		Size:   size,
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
