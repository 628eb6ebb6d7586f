package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// StockRepository defines read access to per-location stock levels
type StockRepository interface {
	ListByLocation(ctx context.Context, locationID string) ([]entity.StockItem, error)
	ListAll(ctx context.Context) ([]entity.StockItem, error)
}
