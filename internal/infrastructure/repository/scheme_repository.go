package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	domainRepo "github.com/sangkips/distributor-orders/internal/domain/repository"
	"gorm.io/gorm"
)

type schemeRepository struct {
	db *gorm.DB
}

// NewSchemeRepository creates a new scheme repository
func NewSchemeRepository(db *gorm.DB) domainRepo.SchemeRepository {
	return &schemeRepository{db: db}
}

func (r *schemeRepository) ListCandidates(ctx context.Context, today string) ([]entity.Scheme, error) {
	var schemes []entity.Scheme
	err := r.db.WithContext(ctx).
		Scopes(NotStoppedScope, WindowContainsScope(today)).
		Order("created_at ASC, id ASC").
		Find(&schemes).Error
	return schemes, err
}
