package services

import "errors"

// Error kinds returned by the services. Callers match them with errors.Is;
// the wrapped message is safe to show to the client.
var (
	ErrValidation        = errors.New("invalid input")
	ErrConflict          = errors.New("already exists")
	ErrUnauthorized      = errors.New("invalid credentials")
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)
