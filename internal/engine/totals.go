package engine

import (
	"sort"

	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/sangkips/distributor-orders/pkg/money"
	"github.com/shopspring/decimal"
)

// DisplayLineItem is one priced line of a computed order or dispatch.
type DisplayLineItem struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	NetUnitPrice  decimal.Decimal `json:"net_unit_price"`
	GSTPercentage decimal.Decimal `json:"gst_percentage"`
	LineSubtotal  decimal.Decimal `json:"line_subtotal"`
	IsFreebie     bool            `json:"is_freebie"`
	SchemeSource  string          `json:"scheme_source,omitempty"`
	HasTierPrice  bool            `json:"has_tier_price"`
}

// Shipment is the bulk size of an order across paid and free lines.
type Shipment struct {
	Litres    decimal.Decimal `json:"litres"`
	Kilograms decimal.Decimal `json:"kilograms"`
}

// sortLines orders paid lines before free ones, then by name, then by id.
func sortLines(lines []DisplayLineItem) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.IsFreebie != b.IsFreebie {
			return !a.IsFreebie
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ProductID < b.ProductID
	})
}

// orderTotals rounds subtotal and GST to whole units separately and then
// adds them, so subtotal + gst always equals the grand total.
func orderTotals(lines []DisplayLineItem) (subtotal, gst, grand decimal.Decimal) {
	subtotal, gst = decimal.Zero, decimal.Zero
	for _, l := range lines {
		if l.IsFreebie {
			continue
		}
		lineSubtotal := l.NetUnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		subtotal = subtotal.Add(lineSubtotal)
		gst = gst.Add(lineSubtotal.Mul(money.Percent(l.GSTPercentage)))
	}
	subtotal = money.RoundHalfUp(subtotal, 0)
	gst = money.RoundHalfUp(gst, 0)
	return subtotal, gst, subtotal.Add(gst)
}

// dispatchTotal is Σ quantity × gross list price, to 2 decimals.
func dispatchTotal(lines []DisplayLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.IsFreebie {
			continue
		}
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return money.RoundHalfUp(total, 2)
}

func shipmentSize(lines []DisplayLineItem, catalog *Catalog) Shipment {
	s := Shipment{Litres: decimal.Zero, Kilograms: decimal.Zero}
	for _, l := range lines {
		p, ok := catalog.Resolve(l.ProductID)
		if !ok {
			continue
		}
		size := p.CartonSize().Mul(decimal.NewFromInt(int64(l.Quantity)))
		if p.ProductType == enum.ProductTypeMass {
			s.Kilograms = s.Kilograms.Add(size)
		} else {
			s.Litres = s.Litres.Add(size)
		}
	}
	s.Litres = money.RoundHalfUp(s.Litres, 3)
	s.Kilograms = money.RoundHalfUp(s.Kilograms, 3)
	return s
}
