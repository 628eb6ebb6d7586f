package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scheme is a "buy N of X, get M of Y free" promotion.
// StartDate, EndDate and StoppedDate are ISO calendar dates (YYYY-MM-DD).
type Scheme struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Description   string    `gorm:"type:text" json:"description"`
	BuySkuID      string    `gorm:"type:uuid;not null;index" json:"buy_sku_id"`
	BuyQuantity   int       `gorm:"not null" json:"buy_quantity"`
	GetSkuID      string    `gorm:"type:uuid;not null" json:"get_sku_id"`
	GetQuantity   int       `gorm:"not null" json:"get_quantity"`
	StartDate     string    `gorm:"size:10;not null;index" json:"start_date"`
	EndDate       string    `gorm:"size:10;not null;index" json:"end_date"`
	IsGlobal      bool      `gorm:"default:false" json:"is_global"`
	DistributorID *string   `gorm:"type:uuid;index" json:"distributor_id,omitempty"`
	StoreID       *string   `gorm:"type:uuid;index" json:"store_id,omitempty"`
	StoppedBy     *string   `gorm:"size:255" json:"stopped_by,omitempty"`
	StoppedDate   *string   `gorm:"size:10" json:"stopped_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new scheme
func (s *Scheme) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Scheme model
func (Scheme) TableName() string {
	return "schemes"
}

// IsStopped reports whether the scheme was stopped. A stopped scheme never comes back.
func (s *Scheme) IsStopped() bool {
	return s.StoppedDate != nil && *s.StoppedDate != ""
}
