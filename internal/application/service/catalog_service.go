package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/internal/domain/repository"
	"github.com/sangkips/distributor-orders/internal/engine"
	"github.com/sangkips/distributor-orders/pkg/logger"
	"github.com/sangkips/distributor-orders/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	catalogModule     = "catalog_service"
	plantLocationName = "Plant"
	summaryTopItems   = 10
)

// StockThresholds are the available-quantity cut-offs for alerts
type StockThresholds struct {
	Low      int
	Critical int
}

// CatalogService handles product selection and stock alerts
type CatalogService struct {
	productRepo     repository.ProductRepository
	stockRepo       repository.StockRepository
	storeRepo       repository.StoreRepository
	plantLocationID string
	thresholds      StockThresholds
	log             logrus.FieldLogger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	storeRepo repository.StoreRepository,
	plantLocationID string,
	thresholds StockThresholds,
	log logrus.FieldLogger,
) *CatalogService {
	if log == nil {
		log = logger.Get()
	}
	return &CatalogService{
		productRepo:     productRepo,
		stockRepo:       stockRepo,
		storeRepo:       storeRepo,
		plantLocationID: plantLocationID,
		thresholds:      thresholds,
		log:             log,
	}
}

// StockAlert is a stock row whose available quantity is below a threshold
type StockAlert struct {
	SkuID        string `json:"sku_id"`
	SkuName      string `json:"sku_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int    `json:"current_quantity"`
	Reserved     int    `json:"reserved"`
	Available    int    `json:"available"`
	Threshold    int    `json:"threshold"`
}

// StockSummary is stock health across all locations
type StockSummary struct {
	TotalLowStockItems int          `json:"total_low_stock_items"`
	TotalCriticalItems int          `json:"total_critical_items"`
	LowStockItems      []StockAlert `json:"low_stock_items"`
	RequiresAttention  bool         `json:"requires_attention"`
}

// SelectableProducts returns products that can be added to a new order
func (s *CatalogService) SelectableProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		logger.LogError(s.log, catalogModule, "SelectableProducts", "list products", nil, err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return engine.NewCatalog(products).Selectable(), nil
}

// Thresholds returns the configured alert thresholds
func (s *CatalogService) Thresholds() StockThresholds {
	return s.thresholds
}

// LowStockItems lists stock rows whose available quantity is below
// threshold, most critical first. An empty locationID covers every location
// and a non-positive threshold uses the configured low threshold.
func (s *CatalogService) LowStockItems(ctx context.Context, locationID string, threshold int) ([]StockAlert, error) {
	if threshold <= 0 {
		threshold = s.thresholds.Low
	}

	var (
		products []entity.Product
		stock    []entity.StockItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.productRepo.ListAll(gctx)
		return wrap("load products", err)
	})
	g.Go(func() (err error) {
		if locationID == "" {
			stock, err = s.stockRepo.ListAll(gctx)
		} else {
			stock, err = s.stockRepo.ListByLocation(gctx, utils.NormalizeID(locationID))
		}
		return wrap("load stock", err)
	})
	if err := g.Wait(); err != nil {
		logger.LogError(s.log, catalogModule, "LowStockItems", "load snapshot", locationID, err)
		return nil, err
	}

	catalog := engine.NewCatalog(products)
	names := make(map[string]string)
	alerts := []StockAlert{}
	for _, item := range stock {
		available := item.Available()
		if available >= threshold {
			continue
		}
		name := item.SkuID
		if p, ok := catalog.Resolve(item.SkuID); ok {
			name = p.Name
		}
		locName, err := s.locationName(ctx, names, item.LocationID)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, StockAlert{
			SkuID:        item.SkuID,
			SkuName:      name,
			LocationID:   item.LocationID,
			LocationName: locName,
			Quantity:     item.Quantity,
			Reserved:     item.Reserved,
			Available:    available,
			Threshold:    threshold,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Available != alerts[j].Available {
			return alerts[i].Available < alerts[j].Available
		}
		if alerts[i].SkuName != alerts[j].SkuName {
			return alerts[i].SkuName < alerts[j].SkuName
		}
		return alerts[i].LocationID < alerts[j].LocationID
	})
	return alerts, nil
}

// CriticalStockItems lists rows below the critical threshold
func (s *CatalogService) CriticalStockItems(ctx context.Context, locationID string) ([]StockAlert, error) {
	return s.LowStockItems(ctx, locationID, s.thresholds.Critical)
}

// StockSummary reports stock health across every location
func (s *CatalogService) StockSummary(ctx context.Context) (*StockSummary, error) {
	low, err := s.LowStockItems(ctx, "", s.thresholds.Low)
	if err != nil {
		return nil, err
	}

	critical := 0
	for _, a := range low {
		if a.Available < s.thresholds.Critical {
			critical++
		}
	}

	top := low
	if len(top) > summaryTopItems {
		top = top[:summaryTopItems]
	}
	return &StockSummary{
		TotalLowStockItems: len(low),
		TotalCriticalItems: critical,
		LowStockItems:      top,
		RequiresAttention:  critical > 0,
	}, nil
}

func (s *CatalogService) locationName(ctx context.Context, cache map[string]string, locationID string) (string, error) {
	if locationID == s.plantLocationID {
		return plantLocationName, nil
	}
	if name, ok := cache[locationID]; ok {
		return name, nil
	}
	store, err := s.storeRepo.GetByID(ctx, locationID)
	if err != nil {
		logger.LogError(s.log, catalogModule, "locationName", "load store", locationID, err)
		return "", fmt.Errorf("failed to load store: %w", err)
	}
	name := locationID
	if store != nil {
		name = store.Name
	}
	cache[locationID] = name
	return name, nil
}
