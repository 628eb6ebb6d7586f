package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceTier groups per-SKU price overrides assigned to distributors
type PriceTier struct {
	ID          string          `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Items       []PriceTierItem `gorm:"foreignKey:TierID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new price tier
func (t *PriceTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the PriceTier model
func (PriceTier) TableName() string {
	return "price_tiers"
}

// PriceTierItem overrides the gross carton price of one SKU within a tier
type PriceTierItem struct {
	TierID string          `gorm:"type:uuid;primaryKey" json:"tier_id"`
	SkuID  string          `gorm:"type:uuid;primaryKey" json:"sku_id"`
	Price  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
}

// TableName returns the table name for the PriceTierItem model
func (PriceTierItem) TableName() string {
	return "price_tier_items"
}
