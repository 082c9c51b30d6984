package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/paystack"
	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	testhelpers "github.com/Techevery/Native-admin-dashboard-backend/internal/test"
)

type checkoutEnv struct {
	uc      *OrderUseCase
	catalog *testhelpers.ProductRepositoryStub
	orders  *testhelpers.OrderRepositoryStub
	gateway *testhelpers.GatewayStub
	mailer  *testhelpers.ConfirmationMailerStub
	sms     *testhelpers.SMSSenderStub
}

func newCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()
	env := &checkoutEnv{
		catalog: testhelpers.NewProductRepositoryStub(),
		orders:  testhelpers.NewOrderRepositoryStub(),
		gateway: &testhelpers.GatewayStub{},
		mailer:  &testhelpers.ConfirmationMailerStub{},
		sms:     &testhelpers.SMSSenderStub{},
	}
	env.orders.Catalog = env.catalog
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	env.uc = NewOrderUseCase(env.catalog, env.orders, env.gateway, env.mailer, env.sms, logger)
	return env
}

func (e *checkoutEnv) seedProduct(t *testing.T, name string, price int64) int64 {
	t.Helper()
	p, err := e.catalog.Create(context.Background(), model.Product{Name: name, Price: price, Status: model.StatusActive, Stock: model.StockIn})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p.ID
}

func validInput(items []model.OrderDraftItem, amount int64) CheckoutInput {
	return CheckoutInput{
		Items:   items,
		Amount:  amount,
		Email:   "buyer@example.com",
		Address: "12 Marina Rd",
		Phone:   "2348012345678",
	}
}

func TestCheckoutSuccess(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 250000)
	drink := env.seedProduct(t, "Chapman", 100000)

	input := validInput([]model.OrderDraftItem{
		{ProductID: rice, Quantity: 2},
		{ProductID: drink, Quantity: 1},
	}, 600000)

	result, err := env.uc.Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.Replayed {
		t.Fatal("fresh checkout reported as replay")
	}

	order := result.Order
	if order.Total != 600000 {
		t.Fatalf("unexpected total: %d", order.Total)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.Number == "" {
		t.Fatal("expected generated order number")
	}
	if len(order.Items) != 2 || order.Items[0].Name != "Jollof Rice" || order.Items[0].Price != 250000 {
		t.Fatalf("items not populated: %+v", order.Items)
	}

	if env.gateway.Calls != 1 {
		t.Fatalf("expected one gateway call, got %d", env.gateway.Calls)
	}
	if env.gateway.LastAmount != 600000*100 {
		t.Fatalf("gateway amount not scaled to its minor unit: %d", env.gateway.LastAmount)
	}
	if env.gateway.LastEmail != "buyer@example.com" {
		t.Fatalf("unexpected gateway email: %q", env.gateway.LastEmail)
	}

	if order.Reference == nil || *order.Reference != result.Payment.Reference {
		t.Fatalf("reference not attached: %+v", order.Reference)
	}
	if len(env.orders.AttachCalls) != 1 {
		t.Fatalf("expected one attach call, got %d", len(env.orders.AttachCalls))
	}

	if len(env.mailer.Sent) != 1 || env.mailer.Sent[0].Number != order.Number {
		t.Fatalf("confirmation email not sent")
	}
	if len(env.sms.Phones) != 1 || env.sms.Phones[0] != "2348012345678" {
		t.Fatalf("sms not sent: %+v", env.sms.Phones)
	}
}

func TestCheckoutAmountMismatch(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)

	// client declares 900 where the catalog says 1000
	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 90000)

	_, err := env.uc.Checkout(context.Background(), input)
	if !errors.Is(err, domainErrors.ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	if len(env.orders.Orders) != 0 {
		t.Fatal("order persisted despite amount mismatch")
	}
	if env.gateway.Calls != 0 {
		t.Fatal("gateway called despite amount mismatch")
	}
}

func TestCheckoutUnknownProductAborts(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)

	input := validInput([]model.OrderDraftItem{
		{ProductID: rice, Quantity: 1},
		{ProductID: 9999, Quantity: 1},
	}, 200000)

	_, err := env.uc.Checkout(context.Background(), input)
	if !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(env.orders.Orders) != 0 {
		t.Fatal("partial order persisted")
	}
	if env.gateway.Calls != 0 {
		t.Fatal("gateway called for unresolvable cart")
	}
}

func TestCheckoutValidation(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)

	cases := map[string]CheckoutInput{
		"empty cart":    validInput(nil, 100000),
		"zero quantity": validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 0}}, 100000),
		"bad product id": validInput([]model.OrderDraftItem{
			{ProductID: 0, Quantity: 1},
		}, 100000),
		"missing amount": validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 0),
	}

	missingEmail := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)
	missingEmail.Email = ""
	cases["missing email"] = missingEmail

	badType := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)
	badType.PaymentType = "crypto"
	cases["unknown payment type"] = badType

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := env.uc.Checkout(context.Background(), input); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if len(env.orders.Orders) != 0 || env.gateway.Calls != 0 {
		t.Fatal("invalid input reached a later stage")
	}
}

func TestCheckoutPaymentRejected(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)
	env.gateway.InitFn = func(context.Context, int64, string, map[string]any) (*model.PaymentInit, error) {
		return nil, &paystack.InitError{Message: "invalid key"}
	}

	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)

	_, err := env.uc.Checkout(context.Background(), input)
	if !errors.Is(err, domainErrors.ErrPaymentInitFailed) {
		t.Fatalf("expected ErrPaymentInitFailed, got %v", err)
	}

	// no rollback: the order stays pending with a null reference
	if len(env.orders.Orders) != 1 {
		t.Fatalf("expected order preserved, have %d", len(env.orders.Orders))
	}
	for _, order := range env.orders.Orders {
		if order.Status != model.OrderStatusPending || order.Reference != nil {
			t.Fatalf("order mutated on payment failure: %+v", order)
		}
	}
	if len(env.mailer.Sent) != 0 || len(env.sms.Phones) != 0 {
		t.Fatal("notifications fired despite payment failure")
	}
}

func TestCheckoutGatewayUnreachable(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)
	env.gateway.InitFn = func(context.Context, int64, string, map[string]any) (*model.PaymentInit, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)

	_, err := env.uc.Checkout(context.Background(), input)
	if !errors.Is(err, domainErrors.ErrPaymentGatewayUnreachable) {
		t.Fatalf("expected ErrPaymentGatewayUnreachable, got %v", err)
	}
	if len(env.orders.Orders) != 1 {
		t.Fatal("order not preserved on transport failure")
	}
}

func TestCheckoutNotificationFailuresDoNotChangeOutcome(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)
	env.mailer.Err = errors.New("smtp down")
	env.sms.Err = errors.New("sms gateway down")

	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)

	result, err := env.uc.Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("checkout failed on notification error: %v", err)
	}
	if result.Order.Reference == nil {
		t.Fatal("reference lost on notification failure")
	}
	if result.Order.Status != model.OrderStatusPending {
		t.Fatalf("status mutated: %s", result.Order.Status)
	}
}

func TestCheckoutIdempotencyReplay(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)

	key := "3f2a0f9e-7c50-4e0b-9b59-2f2dd1ba1a77"
	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)
	input.IdempotencyKey = &key

	first, err := env.uc.Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}

	second, err := env.uc.Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !second.Replayed {
		t.Fatal("expected replay")
	}
	if second.Order.ID != first.Order.ID {
		t.Fatalf("replay returned different order: %d vs %d", second.Order.ID, first.Order.ID)
	}
	if env.gateway.Calls != 1 {
		t.Fatalf("gateway called on replay, %d calls", env.gateway.Calls)
	}
	if len(env.orders.Orders) != 1 {
		t.Fatalf("duplicate order persisted, have %d", len(env.orders.Orders))
	}
}

func TestCheckoutIdempotencyInsertRace(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)

	key := "3f2a0f9e-7c50-4e0b-9b59-2f2dd1ba1a77"
	winner := &model.Order{ID: 42, Number: "412345abc12", Status: model.OrderStatusPending, IdempotencyKey: &key}

	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)
	input.IdempotencyKey = &key

	// concurrent request wins the unique insert between our lookup and write
	lookups := 0
	env.uc.orders = raceOrders{inner: env.orders, winner: winner, lookups: &lookups}

	result, err := env.uc.Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("expected replay after lost race, got %v", err)
	}
	if !result.Replayed || result.Order.ID != 42 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if env.gateway.Calls != 0 {
		t.Fatal("gateway called after lost insert race")
	}
}

// raceOrders reports not-found on the first key lookup and the winning order
// afterwards, simulating a concurrent insert between check and write.
type raceOrders struct {
	inner   *testhelpers.OrderRepositoryStub
	winner  *model.Order
	lookups *int
}

func (r raceOrders) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	return nil, domainErrors.ErrAlreadyExists
}

func (r raceOrders) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.inner.GetByID(ctx, id)
}

func (r raceOrders) GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error) {
	*r.lookups++
	if *r.lookups == 1 {
		return nil, domainErrors.ErrNotFound
	}
	return r.winner, nil
}

func (r raceOrders) AttachReference(ctx context.Context, orderID int64, reference string) error {
	return r.inner.AttachReference(ctx, orderID, reference)
}

func (r raceOrders) List(ctx context.Context, page, size int) ([]model.Order, int64, error) {
	return r.inner.List(ctx, page, size)
}

func (r raceOrders) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return r.inner.UpdateStatus(ctx, orderID, status)
}

func TestCheckoutPersistenceFailure(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)
	env.orders.CreateErr = errors.New("connection reset")

	input := validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)

	_, err := env.uc.Checkout(context.Background(), input)
	if !errors.Is(err, domainErrors.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if env.gateway.Calls != 0 {
		t.Fatal("gateway called after persistence failure")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)

	result, err := env.uc.Checkout(context.Background(), validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	id := result.Order.ID

	if _, err := env.uc.UpdateStatus(context.Background(), id, model.OrderStatusCompleted); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("pending to completed should fail, got %v", err)
	}
	if _, err := env.uc.UpdateStatus(context.Background(), id, "shipped"); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("unknown status should fail, got %v", err)
	}

	order, err := env.uc.UpdateStatus(context.Background(), id, model.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("pending to processing failed: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("status not applied: %s", order.Status)
	}

	if _, err := env.uc.UpdateStatus(context.Background(), id, model.OrderStatusCompleted); err != nil {
		t.Fatalf("processing to completed failed: %v", err)
	}
	if _, err := env.uc.UpdateStatus(context.Background(), id, model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("completed is terminal, got %v", err)
	}

	if _, err := env.uc.UpdateStatus(context.Background(), 9999, model.OrderStatusProcessing); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersPassthrough(t *testing.T) {
	env := newCheckoutEnv(t)
	rice := env.seedProduct(t, "Jollof Rice", 100000)
	for i := 0; i < 3; i++ {
		if _, err := env.uc.Checkout(context.Background(), validInput([]model.OrderDraftItem{{ProductID: rice, Quantity: 1}}, 100000)); err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
	}

	orders, total, err := env.uc.ListOrders(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(orders) != 2 {
		t.Fatalf("unexpected page: total=%d len=%d", total, len(orders))
	}

	got, err := env.uc.GetOrder(context.Background(), orders[0].ID)
	if err != nil || got.ID != orders[0].ID {
		t.Fatalf("get order failed: %v", err)
	}
}
