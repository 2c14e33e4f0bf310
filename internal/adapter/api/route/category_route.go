package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterCategoryRoutes registra as rotas do módulo de categorias
func RegisterCategoryRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, categoryController *controller.CategoryController) {
	categories := r.Group("/categories")
	categories.Use(middleware.AuthMiddleware(jwtService))
	{
		categories.POST("", categoryController.Create)
		categories.GET("", categoryController.List)
		categories.GET("/:id", categoryController.Get)
		categories.DELETE("/:id", categoryController.Delete)
	}
}
