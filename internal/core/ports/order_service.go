package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// CreateOrderInput carries the caller's cart snapshot. The coordinator
// trusts items and total as supplied and does not re-derive the total.
type CreateOrderInput struct {
	UserID  string
	Items   []domain.CartItem
	Total   float64
	Address string
}

// OrderService coordinates order creation and the two-phase external
// payment handshake.
type OrderService interface {
	// Create persists a pending order snapshot, then clears the user's cart.
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	// List returns all of the user's orders, any status, storage order.
	List(ctx context.Context, userID string) ([]*domain.Order, error)
	// CreatePaymentIntent requests an external payment intent tagged with
	// orderID. Pure delegation, no local state change.
	CreatePaymentIntent(ctx context.Context, amount float64, orderID string) (string, error)
	// CapturePayment captures the intent and marks the referenced order
	// completed, scoped to the requesting user. Returns the order id the
	// provider reported back.
	CapturePayment(ctx context.Context, intentID, userID string) (string, error)
}
