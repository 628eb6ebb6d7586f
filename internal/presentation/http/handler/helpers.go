package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/distributor-orders/internal/application/service"
	"github.com/sangkips/distributor-orders/internal/presentation/http/dto/request"
	"github.com/sangkips/distributor-orders/internal/presentation/http/dto/response"
	"github.com/sangkips/distributor-orders/pkg/apperror"
)

// bindJSON binds the request body and writes a validation response on failure
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Error(c, apperror.FromValidator(err))
		return false
	}
	return true
}

// bindQuery binds query parameters and writes a validation response on failure
func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.Error(c, apperror.FromValidator(err))
		return false
	}
	return true
}

func toItemInputs(items []request.ItemRequest) []service.ItemInput {
	out := make([]service.ItemInput, len(items))
	for i, it := range items {
		out[i] = service.ItemInput{SkuID: it.SkuID, Quantity: it.Quantity}
	}
	return out
}
