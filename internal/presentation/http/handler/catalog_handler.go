package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/distributor-orders/internal/application/service"
	"github.com/sangkips/distributor-orders/internal/presentation/http/dto/request"
	"github.com/sangkips/distributor-orders/internal/presentation/http/dto/response"
)

// CatalogHandler handles product selection and stock alert requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// SelectableProducts lists products that can be added to a new order
func (h *CatalogHandler) SelectableProducts(c *gin.Context) {
	products, err := h.catalogService.SelectableProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// StockAlerts lists stock rows below the low or critical threshold
func (h *CatalogHandler) StockAlerts(c *gin.Context) {
	var req request.StockAlertsRequest
	if !bindQuery(c, &req) {
		return
	}

	threshold := req.Threshold
	if req.Level == "critical" {
		threshold = h.catalogService.Thresholds().Critical
	}

	alerts, err := h.catalogService.LowStockItems(c.Request.Context(), req.LocationID, threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock alerts retrieved successfully", alerts)
}

// StockSummary reports stock health across all locations
func (h *CatalogHandler) StockSummary(c *gin.Context) {
	summary, err := h.catalogService.StockSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock summary retrieved successfully", summary)
}
