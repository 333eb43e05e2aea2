package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

// PartnershipService records partnership inquiries. Insert-only.
type PartnershipService struct {
	partnerships ports.PartnershipRepository
}

func NewPartnershipService(partnerships ports.PartnershipRepository) *PartnershipService {
	return &PartnershipService{partnerships: partnerships}
}

func (s *PartnershipService) Create(ctx context.Context, input ports.CreatePartnershipInput) (*domain.Partnership, error) {
	partnership := &domain.Partnership{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Message:   input.Message,
		Timestamp: time.Now().UTC(),
	}

	if err := s.partnerships.Insert(ctx, partnership); err != nil {
		return nil, err
	}
	return partnership, nil
}
