package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// DistributorRepository defines read access to distributor accounts
type DistributorRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Distributor, error)
}

// StoreRepository defines read access to stores
type StoreRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Store, error)
}
