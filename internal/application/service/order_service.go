package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/internal/domain/repository"
	"github.com/sangkips/distributor-orders/internal/engine"
	"github.com/sangkips/distributor-orders/pkg/apperror"
	"github.com/sangkips/distributor-orders/pkg/logger"
	"github.com/sangkips/distributor-orders/pkg/money"
	"github.com/sangkips/distributor-orders/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const orderModule = "order_service"

// OrderRules configures how orders are priced and where stock is drawn from
type OrderRules struct {
	Location              *time.Location
	PlantLocationID       string
	RequireSpecialSchemes bool
}

// OrderService loads snapshots and runs the order engine over them
type OrderService struct {
	productRepo     repository.ProductRepository
	schemeRepo      repository.SchemeRepository
	priceTierRepo   repository.PriceTierRepository
	stockRepo       repository.StockRepository
	distributorRepo repository.DistributorRepository
	storeRepo       repository.StoreRepository
	rules           OrderRules
	log             logrus.FieldLogger
	now             func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	productRepo repository.ProductRepository,
	schemeRepo repository.SchemeRepository,
	priceTierRepo repository.PriceTierRepository,
	stockRepo repository.StockRepository,
	distributorRepo repository.DistributorRepository,
	storeRepo repository.StoreRepository,
	rules OrderRules,
	log logrus.FieldLogger,
) *OrderService {
	if rules.Location == nil {
		rules.Location = time.UTC
	}
	if log == nil {
		log = logger.Get()
	}
	return &OrderService{
		productRepo:     productRepo,
		schemeRepo:      schemeRepo,
		priceTierRepo:   priceTierRepo,
		stockRepo:       stockRepo,
		distributorRepo: distributorRepo,
		storeRepo:       storeRepo,
		rules:           rules,
		log:             log,
		now:             time.Now,
	}
}

// ItemInput represents one requested product
type ItemInput struct {
	SkuID    string
	Quantity int
}

// PreviewOrderInput represents a distributor order to be priced
type PreviewOrderInput struct {
	DistributorID     string
	Items             []ItemInput
	ApprovalGrantedBy string
}

// PreviewDispatchInput represents a plant-to-store dispatch to be valued
type PreviewDispatchInput struct {
	StoreID string
	Items   []ItemInput
}

// Preview is a computed order together with its submission decision
type Preview struct {
	Result           *engine.OrderComputationResult `json:"result"`
	Decision         engine.Decision                `json:"decision"`
	Today            string                         `json:"today"`
	SourceLocationID string                         `json:"source_location_id"`
}

// PreviewOrder prices a distributor order against current catalog, scheme,
// tier and stock data. Nothing is reserved or persisted.
func (s *OrderService) PreviewOrder(ctx context.Context, input *PreviewOrderInput) (*Preview, error) {
	distributor, err := s.distributorRepo.GetByID(ctx, utils.NormalizeID(input.DistributorID))
	if err != nil {
		logger.LogError(s.log, orderModule, "PreviewOrder", "load distributor", input.DistributorID, err)
		return nil, fmt.Errorf("failed to load distributor: %w", err)
	}
	if distributor == nil {
		return nil, apperror.NewNotFoundError("Distributor")
	}

	account := engine.DistributorAccount(distributor)
	today := engine.LocalDay(s.now(), s.rules.Location)
	source := s.rules.PlantLocationID
	if account.StoreID != "" {
		source = account.StoreID
	}

	var (
		products  []entity.Product
		schemes   []entity.Scheme
		tierItems []entity.PriceTierItem
		stock     []entity.StockItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.productRepo.ListAll(gctx)
		return wrap("load products", err)
	})
	g.Go(func() (err error) {
		schemes, err = s.schemeRepo.ListCandidates(gctx, today)
		return wrap("load schemes", err)
	})
	g.Go(func() (err error) {
		tierItems, err = s.priceTierRepo.ListItems(gctx, account.PriceTierID)
		return wrap("load price tier", err)
	})
	g.Go(func() (err error) {
		stock, err = s.stockRepo.ListByLocation(gctx, source)
		return wrap("load stock", err)
	})
	if err := g.Wait(); err != nil {
		logger.LogError(s.log, orderModule, "PreviewOrder", "load snapshot", input.DistributorID, err)
		return nil, err
	}

	catalog := engine.NewCatalog(products)
	s.reportDrift(catalog)

	requested := requestedQuantities(input.Items)
	result, err := engine.ComputeOrder(engine.OrderInput{
		Account:   account,
		Requested: requested,
		Catalog:   catalog,
		Tiers:     engine.NewTierPrices(tierItems),
		Schemes:   schemes,
		Stock:     engine.NewStockSnapshot(stock, source),
		Today:     today,
		Options:   engine.PromotionOptions{RequireSpecialSchemesFlag: s.rules.RequireSpecialSchemes},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute order: %w", err)
	}
	s.reportResult(account.ID, result)

	decision, err := engine.Evaluate(requested, result, account, input.ApprovalGrantedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"distributor_id": account.ID,
		"grand_total":    money.FormatINR(result.GrandTotal),
		"state":          decision.State.String(),
		"funds_warning":  decision.FundsWarning,
	}).Info("Order previewed")

	return &Preview{
		Result:           result,
		Decision:         decision,
		Today:            today,
		SourceLocationID: source,
	}, nil
}

// PreviewDispatch values a dispatch from the plant to a store
func (s *OrderService) PreviewDispatch(ctx context.Context, input *PreviewDispatchInput) (*Preview, error) {
	store, err := s.storeRepo.GetByID(ctx, utils.NormalizeID(input.StoreID))
	if err != nil {
		logger.LogError(s.log, orderModule, "PreviewDispatch", "load store", input.StoreID, err)
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	source := s.rules.PlantLocationID
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
		stock, err = s.stockRepo.ListByLocation(gctx, source)
		return wrap("load stock", err)
	})
	if err := g.Wait(); err != nil {
		logger.LogError(s.log, orderModule, "PreviewDispatch", "load snapshot", input.StoreID, err)
		return nil, err
	}

	catalog := engine.NewCatalog(products)
	requested := requestedQuantities(input.Items)
	result, err := engine.ComputeDispatch(engine.DispatchInput{
		Requested: requested,
		Catalog:   catalog,
		Stock:     engine.NewStockSnapshot(stock, source),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute dispatch: %w", err)
	}
	s.reportResult(store.ID, result)

	decision, err := engine.Evaluate(requested, result, engine.StoreAccount(store), "")
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate dispatch: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"store_id":    store.ID,
		"total_value": money.FormatINR(result.TotalValue),
		"state":       decision.State.String(),
	}).Info("Dispatch previewed")

	return &Preview{
		Result:           result,
		Decision:         decision,
		Today:            engine.LocalDay(s.now(), s.rules.Location),
		SourceLocationID: source,
	}, nil
}

// ActiveSchemes lists the schemes available today. Without a distributor
// only global schemes are returned.
func (s *OrderService) ActiveSchemes(ctx context.Context, distributorID string) ([]engine.EligibleScheme, error) {
	var account *engine.Account
	if distributorID != "" {
		distributor, err := s.distributorRepo.GetByID(ctx, utils.NormalizeID(distributorID))
		if err != nil {
			logger.LogError(s.log, orderModule, "ActiveSchemes", "load distributor", distributorID, err)
			return nil, fmt.Errorf("failed to load distributor: %w", err)
		}
		if distributor == nil {
			return nil, apperror.NewNotFoundError("Distributor")
		}
		account = engine.DistributorAccount(distributor)
	}

	today := engine.LocalDay(s.now(), s.rules.Location)
	var (
		products []entity.Product
		schemes  []entity.Scheme
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.productRepo.ListAll(gctx)
		return wrap("load products", err)
	})
	g.Go(func() (err error) {
		schemes, err = s.schemeRepo.ListCandidates(gctx, today)
		return wrap("load schemes", err)
	})
	if err := g.Wait(); err != nil {
		logger.LogError(s.log, orderModule, "ActiveSchemes", "load snapshot", distributorID, err)
		return nil, err
	}

	active, skipped := engine.ActiveSchemes(schemes, account, engine.NewCatalog(products), today,
		engine.PromotionOptions{RequireSpecialSchemesFlag: s.rules.RequireSpecialSchemes})
	s.reportSkipped(skipped)
	if active == nil {
		active = []engine.EligibleScheme{}
	}
	return active, nil
}

func (s *OrderService) reportDrift(catalog *engine.Catalog) {
	for _, d := range catalog.PriceDrift() {
		s.log.WithFields(logrus.Fields{
			"sku_id":  d.ProductID,
			"stored":  money.FormatINR(d.Stored),
			"derived": money.FormatINR(d.Derived),
		}).Warn("Stored gross price differs from net plus GST")
	}
}

func (s *OrderService) reportResult(accountID string, result *engine.OrderComputationResult) {
	s.reportSkipped(result.SkippedSchemes)
	for _, issue := range result.LineIssues {
		s.log.WithFields(logrus.Fields{
			"account_id": accountID,
			"sku_id":     issue.ProductID,
			"code":       issue.Code,
		}).Warn(issue.Message)
	}
}

func (s *OrderService) reportSkipped(skipped []engine.SkippedScheme) {
	for _, sk := range skipped {
		s.log.WithFields(logrus.Fields{
			"scheme_id": sk.SchemeID,
			"reason":    sk.Reason,
		}).Warn("Skipping malformed scheme")
	}
}

// requestedQuantities folds items into a quantity per product, summing repeats.
// Non-positive lines are dropped before summing.
func requestedQuantities(items []ItemInput) map[string]int {
	requested := make(map[string]int, len(items))
	for _, it := range items {
		id := utils.NormalizeID(it.SkuID)
		if id == "" || it.Quantity <= 0 {
			continue
		}
		requested[id] += it.Quantity
	}
	return requested
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return nil
}
