package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// CreatePartnershipInput carries a partnership inquiry.
type CreatePartnershipInput struct {
	Name    string
	Email   string
	Company string
	Message string
}

// PartnershipService handles partnership inquiry intake. No authentication
// required.
type PartnershipService interface {
	Create(ctx context.Context, input CreatePartnershipInput) (*domain.Partnership, error)
}
