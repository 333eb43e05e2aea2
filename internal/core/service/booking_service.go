package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

// BookingService records model booking requests. The model must exist; a
// booking against an unknown profile fails with domain.ErrModelNotFound.
type BookingService struct {
	bookings ports.BookingRepository
	models   ports.ModelRepository
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, models ports.ModelRepository, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, models: models, log: log}
}

func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.ModelBooking, error) {
	if _, err := s.models.FindByID(ctx, input.ModelID); err != nil {
		return nil, err
	}

	booking := &domain.ModelBooking{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		ModelID:   input.ModelID,
		Date:      input.Date,
		Time:      input.Time,
		Duration:  input.Duration,
		Status:    domain.BookingPending,
		Message:   input.Message,
		Budget:    input.Budget,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info().Str("booking_id", booking.ID).Str("model_id", booking.ModelID).Msg("booking created")
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, userID string) ([]*domain.ModelBooking, error) {
	return s.bookings.ListByUserID(ctx, userID)
}
