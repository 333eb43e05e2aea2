package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// CartService owns all state transitions on a user's cart.
type CartService interface {
	// GetOrCreate returns the user's cart, persisting an empty one on first
	// access. Idempotent.
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	// AddItem merges the item into the cart by (product_id, size, color) and
	// persists. Fails with domain.ErrInvalidQuantity for non-positive
	// quantities.
	AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error)
	// RemoveItem drops the exact matching line. Fails with
	// domain.ErrCartNotFound when the user has no cart; removing an absent
	// line is a silent no-op.
	RemoveItem(ctx context.Context, userID, productID, size, color string) (*domain.Cart, error)
	// Clear deletes the cart document entirely.
	Clear(ctx context.Context, userID string) error
}
