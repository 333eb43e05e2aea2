package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// BookingRepository defines persistence operations for model bookings.
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.ModelBooking) error
	ListByUserID(ctx context.Context, userID string) ([]*domain.ModelBooking, error)
}
