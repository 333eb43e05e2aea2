package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

type orderEventService struct {
	repo ports.OrderEventRepository
	log  zerolog.Logger
}

// NewOrderEventService returns an OrderEventService that appends each fact
// to the order_events audit collection.
func NewOrderEventService(repo ports.OrderEventRepository, log zerolog.Logger) ports.OrderEventService {
	return &orderEventService{repo: repo, log: log}
}

func (s *orderEventService) Process(ctx context.Context, event domain.OrderEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record order event: %w", err)
	}

	s.log.Debug().
		Str("order_id", event.OrderID).
		Str("type", event.Type).
		Msg("order event recorded")
	return nil
}
