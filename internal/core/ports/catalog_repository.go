package ports

import (
	"context"

	"github.com/velura/storefront-api/internal/core/domain"
)

// ProductRepository defines read operations on the product catalog.
type ProductRepository interface {
	// List returns all products, optionally filtered by category.
	List(ctx context.Context, category string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

// ModelRepository defines read operations on model profiles.
type ModelRepository interface {
	List(ctx context.Context) ([]*domain.ModelProfile, error)
	FindByID(ctx context.Context, id string) (*domain.ModelProfile, error)
}
