package mailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleOrder() *model.Order {
	return &model.Order{
		Email:   "buyer@example.com",
		Address: "12 Market Street",
		Phone:   "08012345678",
		Total:   125000,
		Items: []model.OrderItem{
			{ProductID: 1, Name: "Jollof Rice", Quantity: 2, Price: 50000},
			{ProductID: 2, Name: "Chin Chin", Quantity: 1, Price: 25000},
		},
	}
}

func TestSendOrderConfirmation(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewSMTPMailer("smtp.example.com", 587, "orders@example.com", "pass", "orders@example.com", testLogger())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := m.SendOrderConfirmation(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected relay address %q", gotAddr)
	}
	if gotFrom != "orders@example.com" {
		t.Fatalf("unexpected sender %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "buyer@example.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}

	body := string(gotMsg)
	for _, want := range []string{
		"Subject: Successful Order",
		"Jollof Rice",
		"1000.00", // 2 x 50000 kobo
		"250.00",
		"1250.00", // grand total
		"12 Market Street",
		"08012345678",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected message to contain %q\n%s", want, body)
		}
	}
}

func TestSendUserCredentials(t *testing.T) {
	var gotMsg []byte
	m := NewSMTPMailer("smtp.example.com", 587, "orders@example.com", "pass", "orders@example.com", testLogger())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotMsg = msg
		return nil
	}

	if err := m.SendUserCredentials(context.Background(), "staff@example.com", "s3cret!", model.UserRoleManager); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := string(gotMsg)
	for _, want := range []string{"Subject: New User Created", "staff@example.com", "s3cret!", "manager"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected message to contain %q", want)
		}
	}
}

func TestDeliverPropagatesTransportError(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "", "", "orders@example.com", testLogger())
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	if err := m.SendOrderConfirmation(context.Background(), sampleOrder()); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestDeliverRequiresConfiguration(t *testing.T) {
	m := NewSMTPMailer("", 0, "", "", "", testLogger())
	if err := m.SendOrderConfirmation(context.Background(), sampleOrder()); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestDeliverHonoursContext(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "", "", "orders@example.com", testLogger())
	called := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := m.SendOrderConfirmation(ctx, sampleOrder()); err == nil {
		t.Fatal("expected context error")
	}
	if called {
		t.Fatal("send must not run after cancellation")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{50, "0.50"},
		{100000, "1000.00"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		if got := formatAmount(tc.minor); got != tc.want {
			t.Fatalf("formatAmount(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}
