package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	domainRepo "github.com/sangkips/distributor-orders/internal/domain/repository"
	"gorm.io/gorm"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) ListByLocation(ctx context.Context, locationID string) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Scopes(LocationScope(locationID)).
		Find(&items).Error
	return items, err
}

func (r *stockRepository) ListAll(ctx context.Context) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Order("location_id ASC, sku_id ASC").
		Find(&items).Error
	return items, err
}
