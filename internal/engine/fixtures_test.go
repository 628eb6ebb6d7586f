package engine

import (
	"github.com/sangkips/distributor-orders/internal/domain/entity"
	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/shopspring/decimal"
)

const today = "2024-06-15"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func product(id, name, net, gst string) entity.Product {
	p := entity.Product{
		ID:             id,
		Name:           name,
		ProductType:    enum.ProductTypeVolume,
		UnitSize:       dec("1000"),
		UnitsPerCarton: 12,
		GSTPercentage:  dec(gst),
		PriceNetCarton: dec(net),
		Status:         enum.ProductStatusActive,
	}
	p.PriceGrossCarton = p.DerivedGrossPrice()
	return p
}

// abCatalog is SKU A (net 100, GST 18%) and SKU B (net 50, GST 18%).
func abCatalog() *Catalog {
	return NewCatalog([]entity.Product{
		product("A", "Alpha Oil", "100", "18"),
		product("B", "Beta Oil", "50", "18"),
	})
}

func globalScheme(id, buy string, buyQty int, get string, getQty int) entity.Scheme {
	return entity.Scheme{
		ID:          id,
		BuySkuID:    buy,
		BuyQuantity: buyQty,
		GetSkuID:    get,
		GetQuantity: getQty,
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-30",
		IsGlobal:    true,
	}
}

func plentyOfStock(ids ...string) StockSnapshot {
	snap := StockSnapshot{}
	for _, id := range ids {
		snap[id] = StockLevel{Quantity: 1000}
	}
	return snap
}

func distributor(wallet, credit string) *Account {
	return &Account{
		ID:            "dist-1",
		StoreID:       "store-1",
		WalletBalance: dec(wallet),
		CreditLimit:   dec(credit),
	}
}
