package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware(jwtService))
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/search", productController.Search)
		products.GET("/:id", productController.Get)
		products.PATCH("/:id/stock", productController.UpdateStock)
	}
}
