package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/sangkips/distributor-orders/pkg/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable SKU in the catalog. Prices are per carton.
type Product struct {
	ID               string             `gorm:"type:uuid;primary_key" json:"id"`
	Name             string             `gorm:"size:255;not null" json:"name"`
	Category         string             `gorm:"size:100;index" json:"category"`
	ProductType      enum.ProductType   `gorm:"default:0" json:"product_type"`
	UnitSize         decimal.Decimal    `gorm:"type:decimal(12,3);default:0" json:"unit_size"` // ml or g per unit
	UnitsPerCarton   int                `gorm:"default:1" json:"units_per_carton"`
	HSNCode          string             `gorm:"size:20;column:hsn_code" json:"hsn_code"`
	GSTPercentage    decimal.Decimal    `gorm:"type:decimal(5,2);default:0" json:"gst_percentage"`
	PriceNetCarton   decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"price_net_carton"`
	PriceGrossCarton decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"price_gross_carton"`
	Status           enum.ProductStatus `gorm:"default:0;index" json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "skus"
}

// DerivedGrossPrice is net × (1 + gst/100) rounded to 2 decimals
func (p *Product) DerivedGrossPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(money.Percent(p.GSTPercentage))
	return money.RoundHalfUp(p.PriceNetCarton.Mul(factor), 2)
}

// CartonSize is the bulk size of one carton in litres (Volume) or kilograms (Mass)
func (p *Product) CartonSize() decimal.Decimal {
	return p.UnitSize.Mul(decimal.NewFromInt(int64(p.UnitsPerCarton))).Div(decimal.NewFromInt(1000))
}
