package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware(jwtService))
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.POST("/cancel", saleController.BulkCancel)
		sales.GET("/:id", saleController.Get)
		sales.POST("/:id/cancel", saleController.Cancel)
	}
}
