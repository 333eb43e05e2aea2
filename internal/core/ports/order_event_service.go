package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// OrderEventService persists a single order lifecycle fact.
type OrderEventService interface {
	Process(ctx context.Context, event domain.OrderEvent) error
}

// OrderEventSink is what producers (the order service) see: fire-and-forget
// enqueueing, never blocking the request path.
type OrderEventSink interface {
	Enqueue(event domain.OrderEvent)
}
