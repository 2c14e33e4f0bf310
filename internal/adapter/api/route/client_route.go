package route

import (
	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/middleware"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware(jwtService))
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.DELETE("/:id", clientController.Delete)
		clients.PATCH("/:id/deactivate", clientController.Deactivate)

		clients.POST("/:id/addresses", clientController.CreateAddress)
		clients.GET("/:id/addresses", clientController.ListAddresses)
		clients.POST("/:id/addresses/:addressId/select", clientController.SelectAddress)
		clients.PATCH("/:id/addresses/:addressId/favorite", clientController.ToggleAddressFavorite)
		clients.DELETE("/:id/addresses/:addressId", clientController.DeleteAddress)
	}
}
