package repository

import (
	"context"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// SchemeRepository defines read access to promotional schemes
type SchemeRepository interface {
	// ListCandidates returns schemes that are not stopped and whose window
	// contains today (YYYY-MM-DD). Callers must still apply full eligibility.
	ListCandidates(ctx context.Context, today string) ([]entity.Scheme, error)
}
