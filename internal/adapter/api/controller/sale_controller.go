package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/dto"
	saledomain "github.com/rssarti/PDV-Delivery/internal/domain/sale"
	saleusecase "github.com/rssarti/PDV-Delivery/internal/usecase/sale"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	createSale *saleusecase.CreateSaleUseCase
	getSale    *saleusecase.GetSaleUseCase
	listSales  *saleusecase.ListSalesUseCase
	cancelSale *saleusecase.CancelSaleUseCase
	bulkCancel *saleusecase.BulkCancelSalesUseCase
	logger     logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(
	createSale *saleusecase.CreateSaleUseCase,
	getSale *saleusecase.GetSaleUseCase,
	listSales *saleusecase.ListSalesUseCase,
	cancelSale *saleusecase.CancelSaleUseCase,
	bulkCancel *saleusecase.BulkCancelSalesUseCase,
	logger logger.Logger,
) *SaleController {
	return &SaleController{
		createSale: createSale,
		getSale:    getSale,
		listSales:  listSales,
		cancelSale: cancelSale,
		bulkCancel: bulkCancel,
		logger:     logger,
	}
}

// Create cria uma nova venda
// @Summary Criar venda
// @Description Registra uma nova venda aberta
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.createSale.Execute(ctx, saleusecase.CreateSaleRequest{
		Items:         req.ToSaleItems(),
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		CustomerID:    req.CustomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, saleusecase.ErrCustomerNotFound),
			errors.Is(err, saleusecase.ErrCustomerInactive):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		case errors.Is(err, saledomain.ErrNoItems),
			errors.Is(err, saledomain.ErrInvalidItem),
			errors.Is(err, saledomain.ErrInvalidTotal),
			errors.Is(err, saledomain.ErrNoPaymentMethod):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.logger.Error("erro ao criar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	found, err := c.getSale.Execute(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, saledomain.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(found))
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna a lista de vendas paginada, com filtro opcional por status
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtro por status (OPEN, CANCELLED)"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	opts := saledomain.ListOptions{
		Status: saledomain.Status(ctx.Query("status")),
		Limit:  pagination.PageSize,
		Offset: pagination.Offset(),
	}

	sales, total, err := c.listSales.Execute(ctx, opts)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, pagination.Page, pagination.PageSize))
}

// Cancel cancela uma venda
// @Summary Cancelar venda
// @Description Cancela uma venda aberta com o motivo informado
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param cancel body dto.CancelSaleRequest true "Motivo do cancelamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/cancel [post]
func (c *SaleController) Cancel(ctx *gin.Context) {
	var req dto.CancelSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.cancelSale.Execute(ctx, ctx.Param("id"), req.Reason); err != nil {
		switch {
		case errors.Is(err, saledomain.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		case errors.Is(err, saledomain.ErrAlreadyCancelled):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		case errors.Is(err, saleusecase.ErrMissingSaleID),
			errors.Is(err, saleusecase.ErrMissingReason):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.logger.Error("erro ao cancelar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda cancelada com sucesso", nil))
}

// BulkCancel cancela um conjunto de vendas
// @Summary Cancelar vendas em lote
// @Description Cancela as vendas informadas com o mesmo motivo
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cancel body dto.BulkCancelSalesRequest true "IDs e motivo do cancelamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/cancel [post]
func (c *SaleController) BulkCancel(ctx *gin.Context) {
	var req dto.BulkCancelSalesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.bulkCancel.Execute(ctx, req.SaleIDs, req.Reason); err != nil {
		switch {
		case errors.Is(err, saleusecase.ErrMissingSaleID),
			errors.Is(err, saleusecase.ErrMissingReason):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.logger.Error("erro ao cancelar vendas em lote", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar vendas em lote", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("vendas canceladas com sucesso", nil))
}
