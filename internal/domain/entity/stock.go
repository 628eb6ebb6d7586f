package entity

// StockItem is the on-hand and reserved quantity of one SKU at one location
type StockItem struct {
	SkuID      string `gorm:"type:uuid;primaryKey" json:"sku_id"`
	LocationID string `gorm:"type:uuid;primaryKey;index" json:"location_id"`
	Quantity   int    `gorm:"default:0" json:"quantity"`
	Reserved   int    `gorm:"default:0" json:"reserved"`
}

// TableName returns the table name for the StockItem model
func (StockItem) TableName() string {
	return "stock"
}

// Available is quantity minus reserved. It is negative when upstream
// reservations exceed what is on hand.
func (s StockItem) Available() int {
	return s.Quantity - s.Reserved
}
