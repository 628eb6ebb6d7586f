package request

// ItemRequest is one requested product. Non-positive quantities are ignored.
type ItemRequest struct {
	SkuID    string `json:"sku_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// PreviewOrderRequest represents a distributor order preview request
type PreviewOrderRequest struct {
	DistributorID     string        `json:"distributor_id" binding:"required"`
	Items             []ItemRequest `json:"items" binding:"required,dive"`
	ApprovalGrantedBy string        `json:"approval_granted_by" binding:"omitempty,max=255"`
}

// PreviewDispatchRequest represents a plant-to-store dispatch preview request
type PreviewDispatchRequest struct {
	StoreID string        `json:"store_id" binding:"required"`
	Items   []ItemRequest `json:"items" binding:"required,dive"`
}
