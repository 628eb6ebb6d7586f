package request

// StockAlertsRequest represents stock alert query parameters
type StockAlertsRequest struct {
	LocationID string `form:"location_id"`
	Threshold  int    `form:"threshold" binding:"omitempty,min=1"`
	Level      string `form:"level" binding:"omitempty,oneof=low critical"`
}

// ActiveSchemesRequest represents active scheme query parameters
type ActiveSchemesRequest struct {
	DistributorID string `form:"distributor_id"`
}
