package dto

import (
	"encoding/json"
	"time"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// CheckoutItem is one (product, quantity) pair of a cart.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutRequest is the raw cart. Amount is the client-declared total in
// minor units; the server recomputes and compares, never trusts it.
type CheckoutRequest struct {
	Items       []CheckoutItem `json:"items"`
	Amount      int64          `json:"amount"`
	Email       string         `json:"email"`
	Address     string         `json:"address"`
	Phone       string         `json:"phone"`
	PaymentType string         `json:"payment_type"`
	Metadata    map[string]any `json:"metadata"`
}

// CheckoutResponse wraps the gateway payload the storefront redirects with.
type CheckoutResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Order   OrderResponse   `json:"order"`
}

// OrderItemResponse is one populated order line.
type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Amount    int64  `json:"amount"`
}

// OrderResponse is the full order projection.
type OrderResponse struct {
	ID          int64               `json:"id"`
	Number      string              `json:"number"`
	Email       string              `json:"email"`
	Address     string              `json:"address"`
	Phone       string              `json:"phone"`
	Items       []OrderItemResponse `json:"items"`
	Total       int64               `json:"total"`
	PaymentType string              `json:"payment_type"`
	Status      string              `json:"status"`
	Reference   *string             `json:"reference"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// OrderListResponse is one page of orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Size   int             `json:"size"`
}

// UpdateOrderStatusRequest applies an administrative status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// NewOrderResponse maps a domain order to its response form.
func NewOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.Price,
			Amount:    item.Amount(),
		})
	}
	return OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		Email:       o.Email,
		Address:     o.Address,
		Phone:       o.Phone,
		Items:       items,
		Total:       o.Total,
		PaymentType: string(o.PaymentType),
		Status:      string(o.Status),
		Reference:   o.Reference,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
