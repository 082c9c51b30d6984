package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	testhelpers "github.com/Techevery/Native-admin-dashboard-backend/internal/test"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/usecase"
)

func newTestFacade() (*StorefrontFacade, *testhelpers.UserRepositoryStub) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy, &testhelpers.CredentialsMailerStub{}, logger)

	subs := testhelpers.NewSubcategoryRepositoryStub()
	cats := testhelpers.NewCategoryRepositoryStub()
	cats.Subcategories = subs
	catalogUC := usecase.NewCatalogUseCase(cats, subs)

	products := testhelpers.NewProductRepositoryStub()
	productUC := usecase.NewProductUseCase(products)

	orders := testhelpers.NewOrderRepositoryStub()
	orders.Catalog = products
	orderUC := usecase.NewOrderUseCase(products, orders, &testhelpers.GatewayStub{}, &testhelpers.ConfirmationMailerStub{}, &testhelpers.SMSSenderStub{}, logger)

	return NewStorefrontFacade(authUC, catalogUC, productUC, orderUC), users
}

func TestStorefrontFacadeAuth(t *testing.T) {
	facade, users := newTestFacade()
	ctx := context.Background()

	user, err := facade.CreateUser(ctx, "Ada", "ada@example.com", "secret12", model.UserRoleManager)
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if _, err := users.GetByID(ctx, user.ID); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	_, token, err := facade.Login(ctx, "ada@example.com", "secret12")
	if err != nil || token == "" {
		t.Fatalf("login failed: %v", err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil || id != 99 {
		t.Fatalf("unexpected parse result: %d %v", id, err)
	}

	got, err := facade.User(ctx, user.ID)
	if err != nil || got.Email != "ada@example.com" {
		t.Fatalf("fetch user failed: %v", err)
	}
}

func TestStorefrontFacadeCheckoutFlow(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	product, err := facade.CreateProduct(ctx, testhelpers.RandomProduct())
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	result, err := facade.Checkout(ctx, usecase.CheckoutInput{
		Items:   []model.OrderDraftItem{{ProductID: product.ID, Quantity: 2}},
		Amount:  product.Price * 2,
		Email:   testhelpers.RandomEmail(),
		Address: testhelpers.RandomAddress(),
		Phone:   testhelpers.RandomPhone(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	order, err := facade.Order(ctx, result.Order.ID)
	if err != nil || order.Total != product.Price*2 {
		t.Fatalf("order fetch failed: %v", err)
	}

	orders, total, err := facade.Orders(ctx, 1, 10)
	if err != nil || total != 1 || len(orders) != 1 {
		t.Fatalf("list failed: %v total=%d", err, total)
	}

	updated, err := facade.UpdateOrderStatus(ctx, order.ID, model.OrderStatusProcessing)
	if err != nil || updated.Status != model.OrderStatusProcessing {
		t.Fatalf("status update failed: %v", err)
	}
}

func TestStorefrontFacadeCatalog(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	sub, err := facade.CreateSubcategory(ctx, "Rice Dishes")
	if err != nil {
		t.Fatalf("create subcategory failed: %v", err)
	}
	category, err := facade.CreateCategory(ctx, "Meals", "hot meals", model.ImageRef{}, []int64{sub.ID})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	overview, err := facade.CategoryOverview(ctx)
	if err != nil || overview.TotalCategories != 1 {
		t.Fatalf("overview failed: %v", err)
	}

	got, err := facade.Category(ctx, category.ID)
	if err != nil || len(got.Subcategories) != 1 {
		t.Fatalf("category fetch failed: %v", err)
	}

	subs, err := facade.Subcategories(ctx)
	if err != nil || len(subs) != 1 {
		t.Fatalf("subcategory list failed: %v", err)
	}
}
