package engine

import (
	"errors"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	errInvalidGST  = errors.New("gst percentage outside 0-100")
	errZeroDivisor = errors.New("tier price divisor is zero")
)

type tierKey struct {
	tierID string
	skuID  string
}

// TierPrices holds per-tier gross price overrides keyed by (tier, sku).
type TierPrices map[tierKey]decimal.Decimal

// NewTierPrices indexes tier items. When a (tier, sku) pair repeats, the first item wins.
func NewTierPrices(items []entity.PriceTierItem) TierPrices {
	t := make(TierPrices, len(items))
	for _, it := range items {
		k := tierKey{tierID: it.TierID, skuID: it.SkuID}
		if _, dup := t[k]; dup {
			continue
		}
		t[k] = it.Price
	}
	return t
}

func (t TierPrices) override(account *Account, productID string) (decimal.Decimal, bool) {
	if account == nil || account.PriceTierID == "" {
		return decimal.Zero, false
	}
	price, ok := t[tierKey{tierID: account.PriceTierID, skuID: productID}]
	return price, ok
}

// HasTierPrice reports whether the account's tier overrides productID.
func (t TierPrices) HasTierPrice(account *Account, productID string) bool {
	_, ok := t.override(account, productID)
	return ok
}

// UnitPrice returns the gross carton price the account pays for productID:
// the tier override when one exists, else the catalog gross price.
// It returns false when the product is not in the catalog.
func (t TierPrices) UnitPrice(account *Account, productID string, catalog *Catalog) (decimal.Decimal, bool) {
	p, ok := catalog.Resolve(productID)
	if !ok {
		return decimal.Zero, false
	}
	if price, ok := t.override(account, productID); ok {
		return price, true
	}
	return p.PriceGrossCarton, true
}

// NetUnitPrice returns the pre-tax carton price. A tier override is a gross
// price, so tax is backed out of it; otherwise the catalog net price applies.
func (t TierPrices) NetUnitPrice(account *Account, p entity.Product) (decimal.Decimal, error) {
	if err := validateGST(p.GSTPercentage); err != nil {
		return decimal.Zero, err
	}
	price, ok := t.override(account, p.ID)
	if !ok {
		return p.PriceNetCarton, nil
	}
	divisor := decimal.NewFromInt(1).Add(money.Percent(p.GSTPercentage))
	if divisor.IsZero() {
		return decimal.Zero, errZeroDivisor
	}
	return price.Div(divisor), nil
}

func validateGST(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return errInvalidGST
	}
	return nil
}
