package engine

import (
	"fmt"
	"sort"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// StockLevel is on-hand and reserved quantity for one product.
type StockLevel struct {
	Quantity int
	Reserved int
}

// Available is quantity minus reserved and may be negative.
func (l StockLevel) Available() int {
	return l.Quantity - l.Reserved
}

// StockSnapshot maps product id to its stock level at one location.
type StockSnapshot map[string]StockLevel

// NewStockSnapshot keeps the rows for locationID, summing repeated products.
func NewStockSnapshot(items []entity.StockItem, locationID string) StockSnapshot {
	snap := make(StockSnapshot)
	for _, it := range items {
		if it.LocationID != locationID {
			continue
		}
		lvl := snap[it.SkuID]
		lvl.Quantity += it.Quantity
		lvl.Reserved += it.Reserved
		snap[it.SkuID] = lvl
	}
	return snap
}

// StockShortfall is one product whose requirement exceeds availability.
type StockShortfall struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

func (s StockShortfall) message() string {
	return fmt.Sprintf("Insufficient stock for %s: required %d, available %d", s.Name, s.Required, s.Available)
}

// StockCheck is an advisory feasibility report against a snapshot.
type StockCheck struct {
	HasIssues  bool             `json:"has_issues"`
	Issues     []string         `json:"issues"`
	Shortfalls []StockShortfall `json:"shortfalls"`
}

// CheckStock compares required quantities (paid plus free) with the
// snapshot. Products without a stock row have nothing available. Results are
// ordered by product name, then id.
func CheckStock(required map[string]int, snapshot StockSnapshot, catalog *Catalog) StockCheck {
	check := StockCheck{Issues: []string{}, Shortfalls: []StockShortfall{}}
	for id, qty := range required {
		if qty <= 0 {
			continue
		}
		available := snapshot[id].Available()
		if qty <= available {
			continue
		}
		name := id
		if catalog != nil {
			if p, ok := catalog.Resolve(id); ok {
				name = p.Name
			}
		}
		check.Shortfalls = append(check.Shortfalls, StockShortfall{
			ProductID: id,
			Name:      name,
			Required:  qty,
			Available: available,
		})
	}

	sort.Slice(check.Shortfalls, func(i, j int) bool {
		a, b := check.Shortfalls[i], check.Shortfalls[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ProductID < b.ProductID
	})
	for _, s := range check.Shortfalls {
		check.Issues = append(check.Issues, s.message())
	}
	check.HasIssues = len(check.Shortfalls) > 0
	return check
}
