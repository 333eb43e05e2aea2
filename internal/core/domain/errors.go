package domain

import "errors"

// Sentinel errors for the storefront. Services return these (optionally
// wrapped with %w) and the API layer maps them to HTTP status codes in one
// place.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")

	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")

	ErrProductNotFound = errors.New("product not found")
	ErrModelNotFound   = errors.New("model not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrPaymentUnavailable   = errors.New("payment provider not configured")
	ErrPaymentCaptureFailed = errors.New("payment capture failed")
)
