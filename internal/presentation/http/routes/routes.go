package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/distributor-orders/internal/config"
	"github.com/sangkips/distributor-orders/internal/presentation/http/handler"
	"github.com/sangkips/distributor-orders/internal/presentation/http/middleware"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order   *handler.OrderHandler
	Catalog *handler.CatalogHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	Log         logrus.FieldLogger
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		}
		if deps.RateLimiter != nil {
			body["rate_limiter"] = deps.RateLimiter.Stats()
		}
		c.JSON(http.StatusOK, body)
	})

	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	{
		registerOrderRoutes(v1, h)
		registerCatalogRoutes(v1, h)
	}

	return router
}

func registerOrderRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/orders/preview", h.Order.PreviewOrder)
	rg.POST("/dispatches/preview", h.Order.PreviewDispatch)
	rg.GET("/schemes/active", h.Order.ActiveSchemes)
}

func registerCatalogRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/products/selectable", h.Catalog.SelectableProducts)

	stock := rg.Group("/stock")
	{
		stock.GET("/alerts", h.Catalog.StockAlerts)
		stock.GET("/summary", h.Catalog.StockSummary)
	}
}
