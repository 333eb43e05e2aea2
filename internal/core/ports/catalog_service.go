package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// CatalogService exposes public reads over products and model profiles.
type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListModels(ctx context.Context) ([]*domain.ModelProfile, error)
	GetModel(ctx context.Context, id string) (*domain.ModelProfile, error)
}
