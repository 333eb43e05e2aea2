package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// CartRepository defines persistence operations for carts. A cart is
// addressed by its owner's user id, never by its own id.
type CartRepository interface {
	// FindByUserID returns domain.ErrCartNotFound when the user has no cart.
	FindByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	Insert(ctx context.Context, cart *domain.Cart) error
	// Replace persists the full cart document, creating it when absent
	// (upsert keyed on user_id).
	Replace(ctx context.Context, cart *domain.Cart) error
	// Delete removes the cart document entirely. Deleting an absent cart is
	// not an error.
	Delete(ctx context.Context, userID string) error
}
