package service

import (
	"context"
	"io"
	"sync"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/pkg/logger"
	"github.com/sirupsen/logrus"
)

type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return r.products, r.err
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []entity.Product
	for _, p := range r.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, r.err
}

type fakeSchemeRepo struct {
	schemes []entity.Scheme

	mu      sync.Mutex
	lastDay string
}

func (r *fakeSchemeRepo) ListCandidates(ctx context.Context, today string) ([]entity.Scheme, error) {
	r.mu.Lock()
	r.lastDay = today
	r.mu.Unlock()
	return r.schemes, nil
}

type fakePriceTierRepo struct {
	items []entity.PriceTierItem
}

func (r *fakePriceTierRepo) ListItems(ctx context.Context, tierID string) ([]entity.PriceTierItem, error) {
	var out []entity.PriceTierItem
	for _, it := range r.items {
		if it.TierID == tierID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	items []entity.StockItem

	mu        sync.Mutex
	locations []string
}

func (r *fakeStockRepo) ListByLocation(ctx context.Context, locationID string) ([]entity.StockItem, error) {
	r.mu.Lock()
	r.locations = append(r.locations, locationID)
	r.mu.Unlock()
	var out []entity.StockItem
	for _, it := range r.items {
		if it.LocationID == locationID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListAll(ctx context.Context) ([]entity.StockItem, error) {
	return r.items, nil
}

type fakeDistributorRepo struct {
	distributors map[string]*entity.Distributor
}

func (r *fakeDistributorRepo) GetByID(ctx context.Context, id string) (*entity.Distributor, error) {
	return r.distributors[id], nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
	calls  int
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	r.calls++
	return r.stores[id], nil
}

func quietLogger() logrus.FieldLogger {
	return logger.New("panic", "json", io.Discard)
}
