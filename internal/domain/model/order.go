package model

import "time"

// OrderStatus describes the order lifecycle. New orders always start pending;
// the checkout flow itself never moves status, only the admin surface does.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentType distinguishes card checkouts from whatsapp-arranged ones.
type PaymentType string

const (
	PaymentTypeCard     PaymentType = "card"
	PaymentTypeWhatsapp PaymentType = "whatsapp"
)

// OrderItem is a line of an order. The product is referenced by identity, not
// snapshotted; Name and Price are resolved from the catalog when the order is
// read back populated.
type OrderItem struct {
	ProductID int64
	Quantity  int
	Name      string
	Price     int64
}

// Amount is the line total in minor units.
func (i OrderItem) Amount() int64 {
	return i.Price * int64(i.Quantity)
}

// Order is a customer purchase. Total is computed server-side at creation and
// immutable afterwards. Reference holds the payment gateway identifier and is
// attached at most once.
type Order struct {
	ID             int64
	Number         string
	Email          string
	Address        string
	Phone          string
	Items          []OrderItem
	Total          int64
	PaymentType    PaymentType
	Status         OrderStatus
	Reference      *string
	IdempotencyKey *string
	Metadata       map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderDraft carries a validated cart into persistence.
type OrderDraft struct {
	Number         string
	Email          string
	Address        string
	Phone          string
	Total          int64
	PaymentType    PaymentType
	IdempotencyKey *string
	Metadata       map[string]any
	Items          []OrderDraftItem
}

// OrderDraftItem is a product reference plus quantity prior to persistence.
type OrderDraftItem struct {
	ProductID int64
	Quantity  int
}
