package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterRecipeRoutes registra as rotas do módulo de receitas
func RegisterRecipeRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, recipeController *controller.RecipeController) {
	recipes := r.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(jwtService))
	{
		recipes.POST("", recipeController.Create)
		recipes.GET("/:id", recipeController.Get)
		recipes.GET("/:id/cost", recipeController.CalculateCost)
	}
}
