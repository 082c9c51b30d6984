package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Checkout pipeline failures.
	ErrInvalidInput              = errors.New("invalid input")
	ErrProductNotFound           = errors.New("product not found")
	ErrAmountMismatch            = errors.New("amount mismatch")
	ErrPersistence               = errors.New("persistence failure")
	ErrPaymentInitFailed         = errors.New("payment initialization failed")
	ErrPaymentGatewayUnreachable = errors.New("payment gateway unreachable")

	ErrInvalidTransition = errors.New("invalid status transition")
)
