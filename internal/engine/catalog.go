package engine

import (
	"sort"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var driftTolerance = decimal.NewFromFloat(0.01)

// Catalog is an immutable product snapshot indexed by id.
type Catalog struct {
	products map[string]entity.Product
	ids      []string
}

// NewCatalog indexes products by id. When an id repeats, the first record wins.
func NewCatalog(products []entity.Product) *Catalog {
	c := &Catalog{products: make(map[string]entity.Product, len(products))}
	for _, p := range products {
		if _, dup := c.products[p.ID]; dup {
			continue
		}
		c.products[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	return c
}

// Resolve looks up any product in the snapshot, discontinued ones included,
// so historical lines keep their pricing.
func (c *Catalog) Resolve(id string) (entity.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// IsActive reports whether id is in the snapshot and not discontinued.
func (c *Catalog) IsActive(id string) bool {
	p, ok := c.products[id]
	return ok && p.Status.Selectable()
}

// Len returns the number of products in the snapshot.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Selectable returns the products that may be added to a new order, by name.
func (c *Catalog) Selectable() []entity.Product {
	out := make([]entity.Product, 0, len(c.ids))
	for _, id := range c.ids {
		if p := c.products[id]; p.Status != enum.ProductStatusDiscontinued {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// PriceDrift describes a product whose stored gross price disagrees with
// net × (1 + gst/100).
type PriceDrift struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Stored    decimal.Decimal `json:"stored"`
	Derived   decimal.Decimal `json:"derived"`
}

// PriceDrift lists products whose stored gross price differs from the
// derived one by more than 0.01.
func (c *Catalog) PriceDrift() []PriceDrift {
	var out []PriceDrift
	for _, id := range c.ids {
		p := c.products[id]
		derived := p.DerivedGrossPrice()
		if p.PriceGrossCarton.Sub(derived).Abs().GreaterThan(driftTolerance) {
			out = append(out, PriceDrift{
				ProductID: p.ID,
				Name:      p.Name,
				Stored:    p.PriceGrossCarton,
				Derived:   derived,
			})
		}
	}
	return out
}
