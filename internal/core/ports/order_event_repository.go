package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// OrderEventRepository appends order lifecycle facts to the audit collection.
type OrderEventRepository interface {
	Insert(ctx context.Context, event *domain.OrderEvent) error
}
