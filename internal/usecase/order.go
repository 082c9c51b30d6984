package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/paystack"
	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
)

// ConfirmationMailer sends the itemized order confirmation.
type ConfirmationMailer interface {
	SendOrderConfirmation(ctx context.Context, order *model.Order) error
}

// PlacementSMSSender notifies the customer's phone that the order went through.
type PlacementSMSSender interface {
	SendOrderPlaced(ctx context.Context, phone string) error
}

// CheckoutInput is a raw cart as submitted by the client. Amount is the
// client-declared total in minor units; it is never trusted, only compared.
type CheckoutInput struct {
	Items          []model.OrderDraftItem
	Amount         int64
	Email          string
	Address        string
	Phone          string
	PaymentType    model.PaymentType
	Metadata       map[string]any
	IdempotencyKey *string
}

// CheckoutResult carries the persisted order plus the gateway handoff. When
// Replayed is true the request matched a previously stored idempotency key
// and no new order or gateway transaction was created.
type CheckoutResult struct {
	Order    *model.Order
	Payment  *model.PaymentInit
	Replayed bool
}

// OrderUseCase runs the checkout pipeline and the administrative order surface.
type OrderUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	gateway  paystack.Gateway
	mailer   ConfirmationMailer
	sms      PlacementSMSSender
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	gateway paystack.Gateway,
	mailer ConfirmationMailer,
	sms PlacementSMSSender,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		products: products,
		orders:   orders,
		gateway:  gateway,
		mailer:   mailer,
		sms:      sms,
		logger:   logger,
	}
}

// Checkout validates the cart against the catalog, persists the order,
// initializes a gateway transaction, and fires best-effort notifications.
// The four steps run strictly in sequence; a failed step aborts before the
// next one, and no step compensates for a later failure (the order is never
// deleted once written).
func (u *OrderUseCase) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	if err := validateCart(input); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != nil {
		existing, err := u.orders.GetByIdempotencyKey(ctx, *input.IdempotencyKey)
		switch {
		case err == nil:
			u.logger.Info("checkout replayed", "order", existing.Number, "idempotency_key", *input.IdempotencyKey)
			return &CheckoutResult{Order: existing, Replayed: true}, nil
		case !errors.Is(err, domainErrors.ErrNotFound):
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
		}
	}

	total, err := u.resolveTotal(ctx, input)
	if err != nil {
		return nil, err
	}

	order, replayed, err := u.persist(ctx, input, total)
	if err != nil {
		return nil, err
	}
	if replayed {
		return &CheckoutResult{Order: order, Replayed: true}, nil
	}

	payment, err := u.initializePayment(ctx, order, input.Metadata)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, order)

	return &CheckoutResult{Order: order, Payment: payment}, nil
}

func validateCart(input CheckoutInput) error {
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", domainErrors.ErrInvalidInput)
	}
	for _, item := range input.Items {
		if item.ProductID <= 0 || item.Quantity < 1 {
			return fmt.Errorf("%w: bad line item", domainErrors.ErrInvalidInput)
		}
	}
	if input.Email == "" || input.Address == "" || input.Phone == "" {
		return fmt.Errorf("%w: email, address and phone are required", domainErrors.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount is required", domainErrors.ErrInvalidInput)
	}
	switch input.PaymentType {
	case "", model.PaymentTypeCard, model.PaymentTypeWhatsapp:
	default:
		return fmt.Errorf("%w: unknown payment type %q", domainErrors.ErrInvalidInput, input.PaymentType)
	}
	return nil
}

// resolveTotal recomputes the cart total from current catalog prices and
// compares it with the client-declared amount. Exact equality in minor units,
// no tolerance.
func (u *OrderUseCase) resolveTotal(ctx context.Context, input CheckoutInput) (int64, error) {
	ids := lo.Uniq(lo.Map(input.Items, func(item model.OrderDraftItem, _ int) int64 {
		return item.ProductID
	}))

	products, err := u.products.GetByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
	}

	byID := lo.KeyBy(products, func(p model.Product) int64 { return p.ID })
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return 0, fmt.Errorf("%w: product %d", domainErrors.ErrProductNotFound, id)
		}
	}

	total := lo.SumBy(input.Items, func(item model.OrderDraftItem) int64 {
		return byID[item.ProductID].Price * int64(item.Quantity)
	})
	if total != input.Amount {
		return 0, fmt.Errorf("%w: declared %d, catalog says %d", domainErrors.ErrAmountMismatch, input.Amount, total)
	}
	return total, nil
}

func (u *OrderUseCase) persist(ctx context.Context, input CheckoutInput, total int64) (*model.Order, bool, error) {
	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = model.PaymentTypeCard
	}

	draft := model.OrderDraft{
		Number:         NewOrderNumber(),
		Email:          input.Email,
		Address:        input.Address,
		Phone:          input.Phone,
		Total:          total,
		PaymentType:    paymentType,
		IdempotencyKey: input.IdempotencyKey,
		Metadata:       input.Metadata,
		Items:          input.Items,
	}

	order, err := u.orders.Create(ctx, draft)
	if err == nil {
		return order, false, nil
	}

	// A concurrent request with the same key may have won the insert race.
	if errors.Is(err, domainErrors.ErrAlreadyExists) && input.IdempotencyKey != nil {
		existing, getErr := u.orders.GetByIdempotencyKey(ctx, *input.IdempotencyKey)
		if getErr == nil {
			return existing, true, nil
		}
	}
	return nil, false, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
}

// initializePayment creates the gateway transaction and attaches the issued
// reference. The gateway contract takes the amount in its own minor unit, so
// the stored total is scaled by 100 on the way out. Failures leave the order
// pending with a null reference; nothing is rolled back.
func (u *OrderUseCase) initializePayment(ctx context.Context, order *model.Order, metadata map[string]any) (*model.PaymentInit, error) {
	payment, err := u.gateway.Initialize(ctx, order.Total*100, order.Email, metadata)
	if err != nil {
		var initErr *paystack.InitError
		if errors.As(err, &initErr) {
			u.logger.Warn("payment initialization rejected", "order", order.Number, "reason", initErr.Message)
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrPaymentInitFailed, initErr.Message)
		}
		u.logger.Error("payment gateway unreachable", "order", order.Number, "error", err)
		return nil, domainErrors.ErrPaymentGatewayUnreachable
	}

	if err := u.orders.AttachReference(ctx, order.ID, payment.Reference); err != nil {
		// Payment already succeeded; surface in logs and keep going.
		u.logger.Error("attach gateway reference failed", "order", order.Number, "error", err)
	} else if order.Reference == nil {
		ref := payment.Reference
		order.Reference = &ref
	}

	return payment, nil
}

// notify dispatches the confirmation email and SMS. Both are independent and
// best-effort: failures are logged and never change the checkout outcome.
func (u *OrderUseCase) notify(ctx context.Context, order *model.Order) {
	if err := u.mailer.SendOrderConfirmation(ctx, order); err != nil {
		u.logger.Error("order confirmation email failed", "order", order.Number, "error", err)
	}
	if err := u.sms.SendOrderPlaced(ctx, order.Phone); err != nil {
		u.logger.Error("order placement sms failed", "order", order.Number, "error", err)
	}
}

// statusTransitions is the administrative order lifecycle. Checkout itself
// never moves status.
var statusTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

// GetOrder fetches a populated order by identifier.
func (u *OrderUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// ListOrders returns one page of orders newest first plus the overall count.
func (u *OrderUseCase) ListOrders(ctx context.Context, page, size int) ([]model.Order, int64, error) {
	return u.orders.List(ctx, page, size)
}

// UpdateStatus applies an administrative status transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	switch status {
	case model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusCompleted, model.OrderStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domainErrors.ErrInvalidInput, status)
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lo.Contains(statusTransitions[order.Status], status) {
		return nil, fmt.Errorf("%w: %s to %s", domainErrors.ErrInvalidTransition, order.Status, status)
	}

	if err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
