package repository

import (
	"context"
	"errors"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	domainRepo "github.com/sangkips/distributor-orders/internal/domain/repository"
	"gorm.io/gorm"
)

type distributorRepository struct {
	db *gorm.DB
}

// NewDistributorRepository creates a new distributor repository
func NewDistributorRepository(db *gorm.DB) domainRepo.DistributorRepository {
	return &distributorRepository{db: db}
}

func (r *distributorRepository) GetByID(ctx context.Context, id string) (*entity.Distributor, error) {
	var distributor entity.Distributor
	err := r.db.WithContext(ctx).First(&distributor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &distributor, err
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &store, err
}
