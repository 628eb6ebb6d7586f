package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// ProductRepository defines read access to the product catalog
type ProductRepository interface {
	// ListAll returns every product, discontinued ones included, ordered by name
	ListAll(ctx context.Context) ([]entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Product, error)
}
