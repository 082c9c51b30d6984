package repository

import (
	"context"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the draft atomically (order row plus line items in one
	// transaction) and returns the order populated with product name/price.
	Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error)
	// AttachReference sets the gateway reference once; it is a no-op when a
	// reference is already present.
	AttachReference(ctx context.Context, orderID int64, reference string) error
	List(ctx context.Context, page, size int) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
