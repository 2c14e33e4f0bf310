package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rssarti/PDV-Delivery/docs"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/controller"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/route"
	"github.com/rssarti/PDV-Delivery/internal/adapter/repository"
	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
	"github.com/rssarti/PDV-Delivery/internal/infrastructure/database"
	clientusecase "github.com/rssarti/PDV-Delivery/internal/usecase/client"
	productusecase "github.com/rssarti/PDV-Delivery/internal/usecase/product"
	recipeusecase "github.com/rssarti/PDV-Delivery/internal/usecase/recipe"
	saleusecase "github.com/rssarti/PDV-Delivery/internal/usecase/sale"
	"github.com/rssarti/PDV-Delivery/pkg/auth"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router     *gin.Engine
	db         *pgxpool.Pool
	log        logger.Logger
	jwtService *auth.JWTService

	clientController   *controller.ClientController
	productController  *controller.ProductController
	categoryController *controller.CategoryController
	supplierController *controller.SupplierController
	recipeController   *controller.RecipeController
	saleController     *controller.SaleController
	authController     *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()

	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar repositórios
	clientRepo := repository.NewClientRepository(db)
	addressRepo := repository.NewAdditionalAddressRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Serviços de domínio e consulta
	addressService := clientdomain.NewAddressManagementService(clientRepo, addressRepo)
	clientQueries := clientusecase.NewQueryService(clientRepo)

	// Casos de uso de clientes
	createClient := clientusecase.NewCreateClientUseCase(clientRepo)
	getClient := clientusecase.NewGetClientUseCase(clientRepo)
	listClients := clientusecase.NewListClientsUseCase(clientRepo)
	deactivateClient := clientusecase.NewDeactivateClientUseCase(clientRepo)
	deleteClient := clientusecase.NewDeleteClientUseCase(clientRepo)
	createAddress := clientusecase.NewCreateAdditionalAddressUseCase(addressService)
	listAddresses := clientusecase.NewListClientAddressesUseCase(addressService)
	selectAddress := clientusecase.NewSelectAddressForOrderUseCase(addressService)
	toggleAddress := clientusecase.NewToggleAddressFavoriteUseCase(addressService)
	deleteAddress := clientusecase.NewDeleteAdditionalAddressUseCase(addressService)

	// Casos de uso de produtos
	createProduct := productusecase.NewCreateProductUseCase(productRepo, categoryRepo)
	getProduct := productusecase.NewGetProductUseCase(productRepo)
	listProducts := productusecase.NewListProductsUseCase(productRepo)
	searchProducts := productusecase.NewSearchProductsUseCase(productRepo)
	updateStock := productusecase.NewUpdateStockUseCase(productRepo)

	// Casos de uso de fichas técnicas
	createRecipe := recipeusecase.NewCreateRecipeUseCase(recipeRepo, productRepo)
	getRecipe := recipeusecase.NewGetRecipeUseCase(recipeRepo)
	calculateCost := recipeusecase.NewCalculateRecipeCostUseCase(recipeRepo, productRepo)

	// Casos de uso de vendas
	createSale := saleusecase.NewCreateSaleUseCase(saleRepo, clientQueries)
	getSale := saleusecase.NewGetSaleUseCase(saleRepo)
	listSales := saleusecase.NewListSalesUseCase(saleRepo)
	cancelSale := saleusecase.NewCancelSaleUseCase(saleRepo)
	bulkCancel := saleusecase.NewBulkCancelSalesUseCase(saleRepo)

	// Criar controllers
	clientController := controller.NewClientController(
		createClient, getClient, listClients, deactivateClient, deleteClient,
		createAddress, listAddresses, selectAddress, toggleAddress, deleteAddress,
		log,
	)
	productController := controller.NewProductController(
		createProduct, getProduct, listProducts, searchProducts, updateStock, log,
	)
	categoryController := controller.NewCategoryController(categoryRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, log)
	recipeController := controller.NewRecipeController(createRecipe, getRecipe, calculateCost, log)
	saleController := controller.NewSaleController(createSale, getSale, listSales, cancelSale, bulkCancel, log)
	authController := controller.NewAuthController(userRepo, jwtService, log)

	// Configurar router com modo correto
	router := gin.Default()

	// Configurar CORS e outros middlewares globais
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:             router,
		db:                 db,
		log:                log,
		jwtService:         jwtService,
		clientController:   clientController,
		productController:  productController,
		categoryController: categoryController,
		supplierController: supplierController,
		recipeController:   recipeController,
		saleController:     saleController,
		authController:     authController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.jwtService, a.authController)
	route.RegisterClientRoutes(api, a.jwtService, a.clientController)
	route.RegisterProductRoutes(api, a.jwtService, a.productController)
	route.RegisterCategoryRoutes(api, a.jwtService, a.categoryController)
	route.RegisterSupplierRoutes(api, a.jwtService, a.supplierController)
	route.RegisterRecipeRoutes(api, a.jwtService, a.recipeController)
	route.RegisterSaleRoutes(api, a.jwtService, a.saleController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	a.SetupRoutes("/api/v1")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
