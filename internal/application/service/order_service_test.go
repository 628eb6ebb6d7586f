package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/sangkips/distributor-orders/internal/engine"
	"github.com/sangkips/distributor-orders/pkg/apperror"
	"github.com/sangkips/distributor-orders/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	plantID     = "00000000-0000-0000-0000-000000000000"
	storeID     = "11111111-1111-1111-1111-111111111111"
	skuA        = "aaaaaaaa-0000-0000-0000-000000000001"
	skuB        = "bbbbbbbb-0000-0000-0000-000000000002"
	distID      = "dddddddd-0000-0000-0000-000000000001"
	storeDistID = "dddddddd-0000-0000-0000-000000000002"
)

func testProduct(id, name, net string) entity.Product {
	p := entity.Product{
		ID:             id,
		Name:           name,
		UnitSize:       decimal.NewFromInt(1000),
		UnitsPerCarton: 12,
		GSTPercentage:  decimal.NewFromInt(18),
		PriceNetCarton: decimal.RequireFromString(net),
		Status:         enum.ProductStatusActive,
	}
	p.PriceGrossCarton = p.DerivedGrossPrice()
	return p
}

type orderFixture struct {
	svc    *OrderService
	stock  *fakeStockRepo
	scheme *fakeSchemeRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	storePtr := storeID
	tier := "gold"

	products := &fakeProductRepo{products: []entity.Product{
		testProduct(skuA, "Alpha Oil", "100"),
		testProduct(skuB, "Beta Oil", "50"),
	}}
	schemes := &fakeSchemeRepo{schemes: []entity.Scheme{{
		ID: "s1", BuySkuID: skuA, BuyQuantity: 10, GetSkuID: skuB, GetQuantity: 2,
		StartDate: "2024-06-01", EndDate: "2024-06-30", IsGlobal: true,
	}}}
	stock := &fakeStockRepo{items: []entity.StockItem{
		{SkuID: skuA, LocationID: plantID, Quantity: 100},
		{SkuID: skuB, LocationID: plantID, Quantity: 100},
		{SkuID: skuA, LocationID: storeID, Quantity: 100},
		{SkuID: skuB, LocationID: storeID, Quantity: 3},
	}}
	distributors := &fakeDistributorRepo{distributors: map[string]*entity.Distributor{
		distID: {
			ID: distID, Name: "Plant Buyer",
			WalletBalance: decimal.NewFromInt(1000), CreditLimit: decimal.NewFromInt(5000),
		},
		storeDistID: {
			ID: storeDistID, Name: "Store Buyer", StoreID: &storePtr, PriceTierID: &tier,
			WalletBalance: decimal.NewFromInt(100000),
		},
	}}
	stores := &fakeStoreRepo{stores: map[string]*entity.Store{
		storeID: {ID: storeID, Name: "City Store"},
	}}
	tiers := &fakePriceTierRepo{items: []entity.PriceTierItem{
		{TierID: "gold", SkuID: skuA, Price: decimal.NewFromInt(59)},
	}}

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	svc := NewOrderService(products, schemes, tiers, stock, distributors, stores, OrderRules{
		Location:        kolkata,
		PlantLocationID: plantID,
	}, quietLogger())
	// 2024-06-14 20:00 UTC is 2024-06-15 in Kolkata
	svc.now = func() time.Time { return time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC) }

	return &orderFixture{svc: svc, stock: stock, scheme: schemes}
}

func TestPreviewOrderFromPlant(t *testing.T) {
	f := newOrderFixture(t)

	preview, err := f.svc.PreviewOrder(context.Background(), &PreviewOrderInput{
		DistributorID: distID,
		Items: []ItemInput{
			{SkuID: skuA, Quantity: 15},
			{SkuID: " " + skuA + " ", Quantity: 10},
		},
	})
	if err != nil {
		t.Fatalf("PreviewOrder: %v", err)
	}

	if preview.Today != "2024-06-15" || f.scheme.lastDay != "2024-06-15" {
		t.Errorf("today = %s, scheme day = %s", preview.Today, f.scheme.lastDay)
	}
	if preview.SourceLocationID != plantID {
		t.Errorf("source = %s, want plant", preview.SourceLocationID)
	}
	if !preview.Result.GrandTotal.Equal(decimal.NewFromInt(2950)) {
		t.Errorf("grand total = %s, want 2950", preview.Result.GrandTotal)
	}
	if len(preview.Result.Lines) != 2 || preview.Result.Lines[1].Quantity != 4 {
		t.Errorf("lines = %+v", preview.Result.Lines)
	}

	d := preview.Decision
	if !d.IsUsingCredit || d.FundsWarning || d.Submittable() {
		t.Errorf("decision = %+v", d)
	}
}

func TestPreviewOrderWithApprovalIsSubmittable(t *testing.T) {
	f := newOrderFixture(t)

	preview, err := f.svc.PreviewOrder(context.Background(), &PreviewOrderInput{
		DistributorID:     distID,
		Items:             []ItemInput{{SkuID: skuA, Quantity: 25}},
		ApprovalGrantedBy: "Area Manager",
	})
	if err != nil {
		t.Fatalf("PreviewOrder: %v", err)
	}
	if !preview.Decision.Submittable() {
		t.Errorf("decision = %+v", preview.Decision)
	}
}

func TestRequestedQuantities(t *testing.T) {
	tests := []struct {
		name  string
		items []ItemInput
		want  map[string]int
	}{
		{"repeats are summed", []ItemInput{{SkuID: "a", Quantity: 2}, {SkuID: " a ", Quantity: 3}}, map[string]int{"a": 5}},
		{"negative line does not offset a positive one", []ItemInput{{SkuID: "a", Quantity: 5}, {SkuID: "a", Quantity: -3}}, map[string]int{"a": 5}},
		{"zero and negative only", []ItemInput{{SkuID: "a", Quantity: 0}, {SkuID: "b", Quantity: -1}}, map[string]int{}},
		{"blank id", []ItemInput{{SkuID: "  ", Quantity: 4}}, map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requestedQuantities(tt.items)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for id, qty := range tt.want {
				if got[id] != qty {
					t.Errorf("requested[%s] = %d, want %d", id, got[id], qty)
				}
			}
		})
	}
}

func TestPreviewOrderIgnoresNegativeRepeat(t *testing.T) {
	f := newOrderFixture(t)
	var buf bytes.Buffer
	f.svc.log = logger.New("info", "json", &buf)

	preview, err := f.svc.PreviewOrder(context.Background(), &PreviewOrderInput{
		DistributorID: distID,
		Items: []ItemInput{
			{SkuID: skuA, Quantity: 25},
			{SkuID: skuA, Quantity: -10},
		},
	})
	if err != nil {
		t.Fatalf("PreviewOrder: %v", err)
	}
	if len(preview.Result.Lines) == 0 || preview.Result.Lines[0].Quantity != 25 {
		t.Fatalf("lines = %+v", preview.Result.Lines)
	}
	if !preview.Result.GrandTotal.Equal(decimal.NewFromInt(2950)) {
		t.Errorf("grand total = %s, want 2950", preview.Result.GrandTotal)
	}

	if !strings.Contains(buf.String(), `"grand_total":"₹2,950.00"`) {
		t.Errorf("log output missing formatted grand total: %s", buf.String())
	}
}

func TestPreviewOrderFromAssignedStore(t *testing.T) {
	f := newOrderFixture(t)

	preview, err := f.svc.PreviewOrder(context.Background(), &PreviewOrderInput{
		DistributorID: storeDistID,
		Items:         []ItemInput{{SkuID: skuA, Quantity: 25}},
	})
	if err != nil {
		t.Fatalf("PreviewOrder: %v", err)
	}

	if preview.SourceLocationID != storeID {
		t.Errorf("source = %s, want store", preview.SourceLocationID)
	}
	if !preview.Result.Lines[0].HasTierPrice || !preview.Result.GrandTotal.Equal(decimal.NewFromInt(1475)) {
		t.Errorf("tier pricing not applied: %+v total %s", preview.Result.Lines[0], preview.Result.GrandTotal)
	}
	if !preview.Result.StockCheck.HasIssues || preview.Decision.Submittable() {
		t.Errorf("store stock for B is 3, expected shortfall: %+v", preview.Result.StockCheck)
	}
}

func TestPreviewOrderUnknownDistributor(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PreviewOrder(context.Background(), &PreviewOrderInput{DistributorID: "nope"})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Errorf("err = %v, want 404", err)
	}
}

func TestPreviewOrderRepositoryFailure(t *testing.T) {
	f := newOrderFixture(t)
	boom := errors.New("connection reset")
	f.svc.productRepo = &fakeProductRepo{err: boom}

	_, err := f.svc.PreviewOrder(context.Background(), &PreviewOrderInput{
		DistributorID: distID,
		Items:         []ItemInput{{SkuID: skuA, Quantity: 1}},
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestPreviewDispatch(t *testing.T) {
	f := newOrderFixture(t)

	preview, err := f.svc.PreviewDispatch(context.Background(), &PreviewDispatchInput{
		StoreID: storeID,
		Items:   []ItemInput{{SkuID: skuA, Quantity: 25}, {SkuID: skuB, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("PreviewDispatch: %v", err)
	}

	r := preview.Result
	if r.Mode != enum.OrderModeDispatch || !r.TotalValue.Equal(decimal.NewFromInt(3127)) {
		t.Errorf("dispatch = %s %s", r.Mode, r.TotalValue)
	}
	if len(r.AppliedSchemes) != 0 || !r.GSTAmount.IsZero() {
		t.Errorf("dispatch applied schemes or gst: %+v", r)
	}
	if preview.SourceLocationID != plantID || !preview.Decision.Submittable() {
		t.Errorf("source %s decision %+v", preview.SourceLocationID, preview.Decision)
	}

	if _, err := f.svc.PreviewDispatch(context.Background(), &PreviewDispatchInput{StoreID: "missing"}); !apperror.IsAppError(err) {
		t.Errorf("missing store err = %v", err)
	}
}

func TestActiveSchemes(t *testing.T) {
	f := newOrderFixture(t)

	active, err := f.svc.ActiveSchemes(context.Background(), "")
	if err != nil {
		t.Fatalf("ActiveSchemes: %v", err)
	}
	if len(active) != 1 || active[0].Source != engine.ScopeGlobal {
		t.Errorf("active = %+v", active)
	}

	if _, err := f.svc.ActiveSchemes(context.Background(), "missing"); !apperror.IsAppError(err) {
		t.Errorf("unknown distributor err = %v", err)
	}
}
