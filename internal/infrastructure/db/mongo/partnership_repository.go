package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velura/storefront-api/internal/core/domain"
)

const collectionPartnerships = "partnerships"

type PartnershipRepository struct {
	col *mongo.Collection
}

func NewPartnershipRepository(db *mongo.Database) *PartnershipRepository {
	return &PartnershipRepository{col: db.Collection(collectionPartnerships)}
}

func (r *PartnershipRepository) Insert(ctx context.Context, partnership *domain.Partnership) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, partnership); err != nil {
		return fmt.Errorf("insert partnership: %w", err)
	}
	return nil
}
