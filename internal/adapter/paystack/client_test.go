package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesInput(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "sk", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "sk", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPClient("https://api.paystack.co", "", testLogger()); err == nil {
		t.Fatal("expected error for empty secret key")
	}
}

func TestInitializeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transaction/initialize" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_key" {
			t.Fatalf("unexpected authorization header %q", got)
		}

		var req initRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Amount != 100000 {
			t.Fatalf("unexpected amount %d", req.Amount)
		}
		if req.Email != "buyer@example.com" {
			t.Fatalf("unexpected email %q", req.Email)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc",
				"access_code": "abc",
				"reference": "ref-123"
			}
		}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test_key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	init, err := client.Initialize(context.Background(), 100000, "buyer@example.com", map[string]any{"cart": "45"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if init.Reference != "ref-123" {
		t.Fatalf("unexpected reference %q", init.Reference)
	}
	if init.AuthorizationURL != "https://checkout.paystack.com/abc" {
		t.Fatalf("unexpected authorization url %q", init.AuthorizationURL)
	}
	if len(init.Raw) == 0 {
		t.Fatal("expected raw gateway payload to be preserved")
	}
}

func TestInitializeBusinessRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid email address"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test_key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Initialize(context.Background(), 1000, "bad", nil)
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected InitError, got %v", err)
	}
	if initErr.Message != "Invalid email address" {
		t.Fatalf("unexpected gateway message %q", initErr.Message)
	}
}

func TestInitializeMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test_key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.Initialize(context.Background(), 1000, "buyer@example.com", nil); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestInitializeMissingReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": true, "message": "ok", "data": {"access_code": "abc"}}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test_key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.Initialize(context.Background(), 1000, "buyer@example.com", nil); err == nil {
		t.Fatal("expected error for missing reference")
	}
}

func TestInitializeTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test_key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Initialize(context.Background(), 1000, "buyer@example.com", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var initErr *InitError
	if errors.As(err, &initErr) {
		t.Fatal("transport failures must not look like gateway rejections")
	}
}

func TestInitializeContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "sk_test_key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.Initialize(ctx, 1000, "buyer@example.com", nil); err == nil {
		t.Fatal("expected context deadline error")
	}
}
