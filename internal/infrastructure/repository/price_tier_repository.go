package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	domainRepo "github.com/sangkips/distributor-orders/internal/domain/repository"
	"gorm.io/gorm"
)

type priceTierRepository struct {
	db *gorm.DB
}

// NewPriceTierRepository creates a new price tier repository
func NewPriceTierRepository(db *gorm.DB) domainRepo.PriceTierRepository {
	return &priceTierRepository{db: db}
}

func (r *priceTierRepository) ListItems(ctx context.Context, tierID string) ([]entity.PriceTierItem, error) {
	if tierID == "" {
		return []entity.PriceTierItem{}, nil
	}
	var items []entity.PriceTierItem
	err := r.db.WithContext(ctx).
		Where("tier_id = ?", tierID).
		Find(&items).Error
	return items, err
}
