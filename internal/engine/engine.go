package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/sangkips/distributor-orders/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	ErrNilCatalog = errors.New("engine: catalog is nil")
	ErrInvalidDay = errors.New("engine: today is not a YYYY-MM-DD date")
)

// Line issue codes.
const (
	IssueUnknownProduct = "unknown_product"
	IssueDiscontinued   = "discontinued"
	IssueInvalidGST     = "invalid_gst"
	IssueInvalidPrice   = "invalid_price"
)

// LineIssue is a requested line left out of the totals.
type LineIssue struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// OrderInput is everything needed to compute a distributor order.
type OrderInput struct {
	Account   *Account
	Requested map[string]int
	Catalog   *Catalog
	Tiers     TierPrices
	Schemes   []entity.Scheme
	Stock     StockSnapshot
	Today     string
	Options   PromotionOptions
}

// DispatchInput is everything needed to value a plant-to-store dispatch.
type DispatchInput struct {
	Requested map[string]int
	Catalog   *Catalog
	Stock     StockSnapshot
}

// OrderComputationResult is the priced, checked order handed to submission.
type OrderComputationResult struct {
	Mode           enum.OrderMode      `json:"mode"`
	Lines          []DisplayLineItem   `json:"lines"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	GSTAmount      decimal.Decimal     `json:"gst_amount"`
	GrandTotal     decimal.Decimal     `json:"grand_total"`
	TotalValue     decimal.Decimal     `json:"total_value"`
	StockCheck     StockCheck          `json:"stock_check"`
	AppliedSchemes []AppliedSchemeInfo `json:"applied_schemes"`
	SkippedSchemes []SkippedScheme     `json:"skipped_schemes,omitempty"`
	LineIssues     []LineIssue         `json:"line_issues"`
	Shipment       Shipment            `json:"shipment"`
}

// SubmissionItem is one line as the persistence layer expects it.
type SubmissionItem struct {
	SkuID     string          `json:"sku_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IsFreebie bool            `json:"is_freebie"`
}

// SubmissionItems returns paid and free lines in display order.
func (r *OrderComputationResult) SubmissionItems() []SubmissionItem {
	items := make([]SubmissionItem, 0, len(r.Lines))
	for _, l := range r.Lines {
		items = append(items, SubmissionItem{
			SkuID:     l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			IsFreebie: l.IsFreebie,
		})
	}
	return items
}

// PaidLineCount counts lines that are not freebies.
func (r *OrderComputationResult) PaidLineCount() int {
	n := 0
	for _, l := range r.Lines {
		if !l.IsFreebie {
			n++
		}
	}
	return n
}

// Payable is the grand total for orders and the total value for dispatches.
func (r *OrderComputationResult) Payable() decimal.Decimal {
	if r.Mode == enum.OrderModeDispatch {
		return r.TotalValue
	}
	return r.GrandTotal
}

// ComputeOrder prices a distributor order: tier pricing, schemes, GST and a
// stock check. Bad rows become LineIssues; only missing inputs are errors.
func ComputeOrder(in OrderInput) (*OrderComputationResult, error) {
	if in.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if !validDay(in.Today) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, in.Today)
	}

	var (
		lines  []DisplayLineItem
		issues []LineIssue
		paid   = make(map[string]int)
	)
	for _, id := range positiveIDs(in.Requested) {
		qty := in.Requested[id]
		p, issue := resolveLine(in.Catalog, id, qty)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		net, err := in.Tiers.NetUnitPrice(in.Account, p)
		if err != nil {
			issues = append(issues, priceIssue(p, qty, err))
			continue
		}
		unit, _ := in.Tiers.UnitPrice(in.Account, id, in.Catalog)
		if net.IsNegative() || unit.IsNegative() {
			issues = append(issues, LineIssue{
				ProductID: id,
				Quantity:  qty,
				Code:      IssueInvalidPrice,
				Message:   fmt.Sprintf("%s has a negative price", p.Name),
			})
			continue
		}
		paid[id] = qty
		lines = append(lines, DisplayLineItem{
			ProductID:     id,
			Name:          p.Name,
			Quantity:      qty,
			UnitPrice:     unit,
			NetUnitPrice:  net,
			GSTPercentage: p.GSTPercentage,
			LineSubtotal:  money.RoundHalfUp(net.Mul(decimal.NewFromInt(int64(qty))), 2),
			HasTierPrice:  in.Tiers.HasTierPrice(in.Account, id),
		})
	}

	promos := MatchPromotions(paid, in.Schemes, in.Account, in.Catalog, in.Today, in.Options)

	required := make(map[string]int, len(paid)+len(promos.Freebies))
	for id, qty := range paid {
		required[id] += qty
	}
	for id, f := range promos.Freebies {
		p, _ := in.Catalog.Resolve(id)
		required[id] += f.Quantity
		lines = append(lines, DisplayLineItem{
			ProductID:     id,
			Name:          p.Name,
			Quantity:      f.Quantity,
			UnitPrice:     decimal.Zero,
			NetUnitPrice:  decimal.Zero,
			GSTPercentage: p.GSTPercentage,
			LineSubtotal:  decimal.Zero,
			IsFreebie:     true,
			SchemeSource:  f.Source.String(),
		})
	}
	sortLines(lines)

	subtotal, gst, grand := orderTotals(lines)
	return &OrderComputationResult{
		Mode:           enum.OrderModeOrder,
		Lines:          nonNilLines(lines),
		Subtotal:       subtotal,
		GSTAmount:      gst,
		GrandTotal:     grand,
		TotalValue:     decimal.Zero,
		StockCheck:     CheckStock(required, in.Stock, in.Catalog),
		AppliedSchemes: nonNilApplied(promos.Applied),
		SkippedSchemes: promos.Skipped,
		LineIssues:     nonNilIssues(issues),
		Shipment:       shipmentSize(lines, in.Catalog),
	}, nil
}

// ComputeDispatch values a store dispatch at catalog gross price. No tax,
// tier pricing or schemes apply.
func ComputeDispatch(in DispatchInput) (*OrderComputationResult, error) {
	if in.Catalog == nil {
		return nil, ErrNilCatalog
	}

	var (
		lines    []DisplayLineItem
		issues   []LineIssue
		required = make(map[string]int)
	)
	for _, id := range positiveIDs(in.Requested) {
		qty := in.Requested[id]
		p, issue := resolveLine(in.Catalog, id, qty)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		if p.PriceGrossCarton.IsNegative() {
			issues = append(issues, LineIssue{
				ProductID: id,
				Quantity:  qty,
				Code:      IssueInvalidPrice,
				Message:   fmt.Sprintf("%s has a negative price", p.Name),
			})
			continue
		}
		required[id] = qty
		lines = append(lines, DisplayLineItem{
			ProductID:     id,
			Name:          p.Name,
			Quantity:      qty,
			UnitPrice:     p.PriceGrossCarton,
			NetUnitPrice:  p.PriceGrossCarton,
			GSTPercentage: decimal.Zero,
			LineSubtotal:  money.RoundHalfUp(p.PriceGrossCarton.Mul(decimal.NewFromInt(int64(qty))), 2),
		})
	}
	sortLines(lines)

	return &OrderComputationResult{
		Mode:           enum.OrderModeDispatch,
		Lines:          nonNilLines(lines),
		Subtotal:       decimal.Zero,
		GSTAmount:      decimal.Zero,
		GrandTotal:     decimal.Zero,
		TotalValue:     dispatchTotal(lines),
		StockCheck:     CheckStock(required, in.Stock, in.Catalog),
		AppliedSchemes: []AppliedSchemeInfo{},
		LineIssues:     nonNilIssues(issues),
		Shipment:       shipmentSize(lines, in.Catalog),
	}, nil
}

func resolveLine(catalog *Catalog, id string, qty int) (entity.Product, *LineIssue) {
	p, ok := catalog.Resolve(id)
	if !ok {
		return p, &LineIssue{
			ProductID: id,
			Quantity:  qty,
			Code:      IssueUnknownProduct,
			Message:   fmt.Sprintf("Product %s not found in catalog", id),
		}
	}
	if p.Status == enum.ProductStatusDiscontinued {
		return p, &LineIssue{
			ProductID: id,
			Quantity:  qty,
			Code:      IssueDiscontinued,
			Message:   fmt.Sprintf("%s is discontinued", p.Name),
		}
	}
	return p, nil
}

func priceIssue(p entity.Product, qty int, err error) LineIssue {
	code := IssueInvalidPrice
	if errors.Is(err, errInvalidGST) {
		code = IssueInvalidGST
	}
	return LineIssue{
		ProductID: p.ID,
		Quantity:  qty,
		Code:      code,
		Message:   fmt.Sprintf("%s cannot be priced: %v", p.Name, err),
	}
}

// positiveIDs returns the ids with a positive quantity, sorted.
func positiveIDs(requested map[string]int) []string {
	ids := make([]string, 0, len(requested))
	for id, qty := range requested {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func nonNilLines(l []DisplayLineItem) []DisplayLineItem {
	if l == nil {
		return []DisplayLineItem{}
	}
	return l
}

func nonNilApplied(a []AppliedSchemeInfo) []AppliedSchemeInfo {
	if a == nil {
		return []AppliedSchemeInfo{}
	}
	return a
}

func nonNilIssues(i []LineIssue) []LineIssue {
	if i == nil {
		return []LineIssue{}
	}
	return i
}
