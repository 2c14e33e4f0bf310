package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/dto"
	categorydomain "github.com/rssarti/PDV-Delivery/internal/domain/category"
	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
	productusecase "github.com/rssarti/PDV-Delivery/internal/usecase/product"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos e estoque
type ProductController struct {
	createProduct *productusecase.CreateProductUseCase
	getProduct    *productusecase.GetProductUseCase
	listProducts  *productusecase.ListProductsUseCase
	search        *productusecase.SearchProductsUseCase
	updateStock   *productusecase.UpdateStockUseCase
	logger        logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(
	createProduct *productusecase.CreateProductUseCase,
	getProduct *productusecase.GetProductUseCase,
	listProducts *productusecase.ListProductsUseCase,
	search *productusecase.SearchProductsUseCase,
	updateStock *productusecase.UpdateStockUseCase,
	logger logger.Logger,
) *ProductController {
	return &ProductController{
		createProduct: createProduct,
		getProduct:    getProduct,
		listProducts:  listProducts,
		search:        search,
		updateStock:   updateStock,
		logger:        logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.createProduct.Execute(ctx, productusecase.CreateProductRequest{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		CategoryID:      req.CategoryID,
		Unit:            req.Unit.ToUnit(),
		Pricing:         req.Pricing.ToPricing(),
		TaxInfo:         req.TaxInfo.ToTaxInfo(),
		EANCode:         req.EANCode,
		InternalCode:    req.InternalCode,
		PreparationTime: req.PreparationTime,
		MinimumStock:    req.MinimumStock,
		CurrentStock:    req.CurrentStock,
		ExpirationDate:  req.ExpirationDate,
		BatchNumber:     req.BatchNumber,
		CanBeIngredient: req.CanBeIngredient,
		NeedsRecipe:     req.NeedsRecipe,
	})
	if err != nil {
		switch {
		case errors.Is(err, productusecase.ErrDuplicateInternalCode),
			errors.Is(err, productusecase.ErrDuplicateEANCode):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		case errors.Is(err, categorydomain.ErrCategoryNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		case errors.Is(err, productusecase.ErrCategoryInactive):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.handleError(ctx, err, "erro ao criar produto")
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(created))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	found, err := c.getProduct.Execute(ctx, ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "erro ao buscar produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(found))
}

// List retorna a lista de produtos
// @Summary Listar produtos
// @Description Retorna a lista de produtos paginada, com filtros opcionais
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param category_id query string false "Filtro por categoria"
// @Param type query string false "Filtro por tipo (INSUMO, PRODUTO_FINAL, BEBIDA, EMBALAGEM)"
// @Param stock_status query string false "Filtro por status de estoque"
// @Param only_active query bool false "Somente produtos ativos"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	onlyActive, _ := strconv.ParseBool(ctx.DefaultQuery("only_active", "false"))

	filter := productdomain.Filter{
		CategoryID:  ctx.Query("category_id"),
		Type:        productdomain.Type(ctx.Query("type")),
		StockStatus: productdomain.StockStatus(ctx.Query("stock_status")),
		OnlyActive:  onlyActive,
		Limit:       pagination.PageSize,
		Offset:      pagination.Offset(),
	}

	products, total, err := c.listProducts.Execute(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// Search busca produtos pelo nome
// @Summary Buscar produtos por nome
// @Description Retorna os produtos cujo nome contém o termo informado
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string true "Termo de busca"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/search [get]
func (c *ProductController) Search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	products, err := c.search.Execute(ctx, ctx.Query("q"), pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao buscar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produtos", err.Error()))
		return
	}

	items := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		items[i] = *dto.ToProductResponse(p)
	}

	ctx.JSON(http.StatusOK, items)
}

// UpdateStock aplica uma movimentação de estoque ao produto
// @Summary Movimentar estoque
// @Description Adiciona ou remove quantidade do estoque do produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param movement body dto.StockUpdateRequest true "Dados da movimentação"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [patch]
func (c *ProductController) UpdateStock(ctx *gin.Context) {
	var req dto.StockUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	updated, err := c.updateStock.Execute(ctx, productusecase.UpdateStockRequest{
		ProductID:      ctx.Param("id"),
		Quantity:       req.Quantity,
		Operation:      productusecase.StockOperation(req.Operation),
		BatchNumber:    req.BatchNumber,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, productdomain.ErrInsufficientStock):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		case errors.Is(err, productdomain.ErrInvalidQuantity),
			errors.Is(err, productusecase.ErrInvalidOperation):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.handleError(ctx, err, "erro ao movimentar estoque")
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(updated))
}

func (c *ProductController) handleError(ctx *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, productdomain.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
	case errors.Is(err, productdomain.ErrEmptyName),
		errors.Is(err, productdomain.ErrNameTooLong),
		errors.Is(err, productdomain.ErrEmptyCategory),
		errors.Is(err, productdomain.ErrNegativeCostPrice),
		errors.Is(err, productdomain.ErrNegativeSalePrice),
		errors.Is(err, productdomain.ErrInvalidBaseQuantity),
		errors.Is(err, productdomain.ErrInvalidFractional),
		errors.Is(err, productdomain.ErrNegativePrepTime),
		errors.Is(err, productdomain.ErrNegativeMinStock),
		errors.Is(err, productdomain.ErrNegativeStock):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
	default:
		c.logger.Error(logMsg, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, logMsg, err.Error()))
	}
}
