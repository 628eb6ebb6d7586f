package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// PriceTierRepository defines read access to price tier overrides
type PriceTierRepository interface {
	ListItems(ctx context.Context, tierID string) ([]entity.PriceTierItem, error)
}
