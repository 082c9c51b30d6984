package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/handlers"
	testhelpers "github.com/Techevery/Native-admin-dashboard-backend/internal/test"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/usecase"
)

// facadeStub rounds out the shared stub with a checkout call so the whole
// route table can be mounted against it.
type facadeStub struct {
	*testhelpers.StorefrontFacadeStub
}

var _ handlers.StorefrontFacade = (*facadeStub)(nil)

func (s *facadeStub) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	return &usecase.CheckoutResult{
		Order:   &model.Order{ID: 1, Number: "412345abc12", Total: input.Amount, Status: model.OrderStatusPending},
		Payment: &model.PaymentInit{Reference: "ref-1", AuthorizationURL: "https://checkout.example/abc"},
	}, nil
}

func newFacadeStub() *facadeStub {
	return &facadeStub{StorefrontFacadeStub: &testhelpers.StorefrontFacadeStub{}}
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(newFacadeStub(), nil, logger)
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestEngine()

	body, _ := json.Marshal(map[string]string{"email": "admin@store.ng", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for login, got %d: %s", resp.Code, resp.Body.String())
	}

	// storefront reads and checkout stay public
	for _, path := range []string{"/api/categories", "/api/subcategories", "/api/products", "/api/products/1"} {
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for GET %s, got %d", path, resp.Code)
		}
	}

	body, _ = json.Marshal(map[string]any{
		"items":   []map[string]any{{"product_id": 1, "quantity": 1}},
		"amount":  250000,
		"email":   "buyer@example.com",
		"address": "12 Allen Avenue, Ikeja",
		"phone":   "+2348012345678",
	})
	req = httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for checkout, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSetupProtectedRoutes(t *testing.T) {
	engine := newTestEngine()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/categories"},
		{http.MethodDelete, "/api/products/1"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/auth/users"},
	}
	for _, route := range protected {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(route.method, route.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for anonymous %s %s, got %d", route.method, route.path, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for authorized orders list, got %d", resp.Code)
	}
}

func TestSetupCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(newFacadeStub(), []string{"https://store.example"}, logger)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://store.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://store.example" {
		t.Fatalf("expected origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted origin, got %d", resp.Code)
	}
}
