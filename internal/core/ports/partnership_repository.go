package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// PartnershipRepository persists partnership inquiries.
type PartnershipRepository interface {
	Insert(ctx context.Context, partnership *domain.Partnership) error
}
