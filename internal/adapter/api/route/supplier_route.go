package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterSupplierRoutes registra as rotas do módulo de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, supplierController *controller.SupplierController) {
	suppliers := r.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware(jwtService))
	{
		suppliers.POST("", supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/:id", supplierController.Get)
		suppliers.DELETE("/:id", supplierController.Delete)
	}
}
