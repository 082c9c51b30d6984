package test

import (
	"context"
	"fmt"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/paystack"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

var _ paystack.Gateway = (*GatewayStub)(nil)

// GatewayStub simulates the payment gateway.
type GatewayStub struct {
	InitFn func(ctx context.Context, amountMinor int64, email string, metadata map[string]any) (*model.PaymentInit, error)

	Calls       int
	LastAmount  int64
	LastEmail   string
	LastBearing map[string]any
}

// Initialize delegates to InitFn or returns a deterministic payment handoff.
func (s *GatewayStub) Initialize(ctx context.Context, amountMinor int64, email string, metadata map[string]any) (*model.PaymentInit, error) {
	s.Calls++
	s.LastAmount = amountMinor
	s.LastEmail = email
	s.LastBearing = metadata
	if s.InitFn != nil {
		return s.InitFn(ctx, amountMinor, email, metadata)
	}
	return &model.PaymentInit{
		Reference:        fmt.Sprintf("ref-%d", s.Calls),
		AuthorizationURL: "https://checkout.example/abc",
		AccessCode:       "abc",
	}, nil
}

// ConfirmationMailerStub records order confirmation emails.
type ConfirmationMailerStub struct {
	Err  error
	Sent []*model.Order
}

// SendOrderConfirmation records the order or fails with the configured error.
func (s *ConfirmationMailerStub) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, order)
	return nil
}

// SMSSenderStub records order placement notifications.
type SMSSenderStub struct {
	Err    error
	Phones []string
}

// SendOrderPlaced records the phone or fails with the configured error.
func (s *SMSSenderStub) SendOrderPlaced(ctx context.Context, phone string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Phones = append(s.Phones, phone)
	return nil
}
