package service

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

// CatalogService serves public product and model-profile reads.
type CatalogService struct {
	products ports.ProductRepository
	models   ports.ModelRepository
}

func NewCatalogService(products ports.ProductRepository, models ports.ModelRepository) *CatalogService {
	return &CatalogService{products: products, models: models}
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.products.List(ctx, category)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) ListModels(ctx context.Context) ([]*domain.ModelProfile, error) {
	return s.models.List(ctx)
}

func (s *CatalogService) GetModel(ctx context.Context, id string) (*domain.ModelProfile, error) {
	return s.models.FindByID(ctx, id)
}
