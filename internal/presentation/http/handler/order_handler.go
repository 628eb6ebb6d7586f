package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/distributor-orders/internal/application/service"
	"github.com/sangkips/distributor-orders/internal/presentation/http/dto/request"
	"github.com/sangkips/distributor-orders/internal/presentation/http/dto/response"
)

// OrderHandler handles order and dispatch preview requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PreviewOrder prices a distributor order and reports whether it can be submitted
func (h *OrderHandler) PreviewOrder(c *gin.Context) {
	var req request.PreviewOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	preview, err := h.orderService.PreviewOrder(c.Request.Context(), &service.PreviewOrderInput{
		DistributorID:     req.DistributorID,
		Items:             toItemInputs(req.Items),
		ApprovalGrantedBy: req.ApprovalGrantedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order computed successfully", preview)
}

// PreviewDispatch values a plant-to-store dispatch
func (h *OrderHandler) PreviewDispatch(c *gin.Context) {
	var req request.PreviewDispatchRequest
	if !bindJSON(c, &req) {
		return
	}

	preview, err := h.orderService.PreviewDispatch(c.Request.Context(), &service.PreviewDispatchInput{
		StoreID: req.StoreID,
		Items:   toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dispatch computed successfully", preview)
}

// ActiveSchemes lists schemes available today, optionally for one distributor
func (h *OrderHandler) ActiveSchemes(c *gin.Context) {
	var req request.ActiveSchemesRequest
	if !bindQuery(c, &req) {
		return
	}

	schemes, err := h.orderService.ActiveSchemes(c.Request.Context(), req.DistributorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active schemes retrieved successfully", schemes)
}
