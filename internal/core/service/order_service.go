package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

const intentCurrency = "USD"

// OrderService creates order snapshots from cart state and drives the
// two-phase handshake with the external payment provider. A nil provider
// means payments are unconfigured; both payment operations then fail with
// domain.ErrPaymentUnavailable.
type OrderService struct {
	orders   ports.OrderRepository
	carts    ports.CartRepository
	provider ports.PaymentProvider
	events   ports.OrderEventSink
	log      zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	carts ports.CartRepository,
	provider ports.PaymentProvider,
	events ports.OrderEventSink,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		carts:    carts,
		provider: provider,
		events:   events,
		log:      log,
	}
}

// Create persists a pending order from the caller's cart snapshot, then
// clears the cart. Items and total are trusted as supplied; the total is not
// re-derived here. The order write comes first: a crash before the cart
// clear leaves a stale cart next to a created order, which is acceptable
// because the cart is a convenience cache and the order is authoritative.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Items:     append([]domain.CartItem(nil), input.Items...),
		Total:     input.Total,
		Status:    domain.OrderPending,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Delete(ctx, input.UserID); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID).Msg("cart clear after order failed")
	}

	s.events.Enqueue(domain.OrderEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Type:      domain.OrderEventCreated,
		Timestamp: order.CreatedAt,
	})

	s.log.Info().Str("order_id", order.ID).Str("user_id", order.UserID).Msg("order created")
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByUserID(ctx, userID)
}

// CreatePaymentIntent requests an external intent tagged with orderID and
// returns the provider's intent id. No local state changes.
func (s *OrderService) CreatePaymentIntent(ctx context.Context, amount float64, orderID string) (string, error) {
	if s.provider == nil {
		return "", domain.ErrPaymentUnavailable
	}

	intentID, err := s.provider.CreateIntent(ctx, amount, intentCurrency, orderID)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intentID, nil
}

// CapturePayment captures the intent and marks the order the provider
// reports back as completed. The update is scoped to both the order id and
// userID, so capturing against another user's order reports not-found and
// leaves that order untouched. When the external capture succeeds but the
// local update fails, the order stays pending and no compensating action is
// taken; the event trail records the failure for out-of-band reconciliation.
func (s *OrderService) CapturePayment(ctx context.Context, intentID, userID string) (string, error) {
	if s.provider == nil {
		return "", domain.ErrPaymentUnavailable
	}

	result, err := s.provider.CaptureIntent(ctx, intentID)
	if err != nil {
		s.events.Enqueue(domain.OrderEvent{
			UserID:    userID,
			Type:      domain.OrderEventCaptureFailed,
			IntentID:  intentID,
			Detail:    err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentCaptureFailed, err)
	}

	if result.ReferenceID == "" {
		return "", fmt.Errorf("%w: provider response missing reference id", domain.ErrPaymentCaptureFailed)
	}

	if err := s.orders.MarkCompleted(ctx, result.ReferenceID, userID, intentID); err != nil {
		s.log.Error().Err(err).
			Str("order_id", result.ReferenceID).
			Str("intent_id", intentID).
			Msg("external capture succeeded but local order update failed")
		s.events.Enqueue(domain.OrderEvent{
			OrderID:   result.ReferenceID,
			UserID:    userID,
			Type:      domain.OrderEventCaptureFailed,
			IntentID:  intentID,
			Detail:    err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return "", err
	}

	s.events.Enqueue(domain.OrderEvent{
		OrderID:   result.ReferenceID,
		UserID:    userID,
		Type:      domain.OrderEventCaptured,
		IntentID:  intentID,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("order_id", result.ReferenceID).Str("intent_id", intentID).Msg("payment captured")
	return result.ReferenceID, nil
}
