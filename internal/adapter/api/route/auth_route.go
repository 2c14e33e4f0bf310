package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, authController *controller.AuthController) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/bootstrap", authController.Bootstrap)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.POST("/register", authController.Register)
			protected.GET("/me", authController.Me)
		}
	}
}
