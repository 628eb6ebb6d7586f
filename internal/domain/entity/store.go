package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store is a company-owned location that receives dispatches from the plant
type Store struct {
	ID            string          `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Location      string          `gorm:"size:255" json:"location"`
	AddressLine1  string          `gorm:"size:255" json:"address_line1"`
	AddressLine2  string          `gorm:"size:255" json:"address_line2"`
	Email         string          `gorm:"size:255" json:"email"`
	Phone         string          `gorm:"size:50" json:"phone"`
	GSTIN         string          `gorm:"size:20;column:gstin" json:"gstin"`
	WalletBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"wallet_balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}
