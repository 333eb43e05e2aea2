package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	// ListByUserID returns all of the user's orders in storage order.
	ListByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	// MarkCompleted sets status=completed and records the captured intent id
	// on the order matching both orderID and userID. Returns
	// domain.ErrOrderNotFound when no document matches, which covers capture
	// attempts against another user's order.
	MarkCompleted(ctx context.Context, orderID, userID, intentID string) error
}
