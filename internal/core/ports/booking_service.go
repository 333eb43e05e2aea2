package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// CreateBookingInput carries a model booking request.
type CreateBookingInput struct {
	UserID   string
	ModelID  string
	Date     string
	Time     string
	Duration int
	Message  string
	Budget   float64
}

// BookingService handles model booking intake.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.ModelBooking, error)
	List(ctx context.Context, userID string) ([]*domain.ModelBooking, error)
}
