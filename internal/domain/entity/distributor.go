package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Distributor is a trade account that places orders against the plant or its store
type Distributor struct {
	ID                string          `gorm:"type:uuid;primary_key" json:"id"`
	Name              string          `gorm:"size:255;not null" json:"name"`
	Phone             string          `gorm:"size:50" json:"phone"`
	State             string          `gorm:"size:100" json:"state"`
	Area              string          `gorm:"size:100" json:"area"`
	AgentCode         *string         `gorm:"size:50" json:"agent_code,omitempty"`
	GSTIN             string          `gorm:"size:20;column:gstin" json:"gstin"`
	BillingAddress    string          `gorm:"type:text" json:"billing_address"`
	CreditLimit       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit_limit"`
	WalletBalance     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"wallet_balance"`
	HasSpecialSchemes bool            `gorm:"default:false" json:"has_special_schemes"`
	PriceTierID       *string         `gorm:"type:uuid;index" json:"price_tier_id,omitempty"`
	StoreID           *string         `gorm:"type:uuid;index" json:"store_id,omitempty"`
	DateAdded         time.Time       `json:"date_added"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new distributor
func (d *Distributor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Distributor model
func (Distributor) TableName() string {
	return "distributors"
}
