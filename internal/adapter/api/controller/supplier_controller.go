package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/dto"
	supplierdomain "github.com/rssarti/PDV-Delivery/internal/domain/supplier"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor de insumos
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := supplierdomain.NewSupplier(req.Name, req.CNPJ, req.Email, req.Phone, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		return
	}

	if err := c.supplierRepo.Save(ctx, created); err != nil {
		c.logger.Error("erro ao salvar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(created))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Retorna os dados de um fornecedor pelo ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	found, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, supplierdomain.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(found))
}

// List retorna a lista de fornecedores
// @Summary Listar fornecedores
// @Description Retorna a lista de fornecedores paginada
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param only_active query bool false "Somente fornecedores ativos"
// @Success 200 {object} dto.SupplierListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	onlyActive, _ := strconv.ParseBool(ctx.DefaultQuery("only_active", "false"))

	suppliers, err := c.supplierRepo.List(ctx, onlyActive, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	total, err := c.supplierRepo.Count(ctx, onlyActive)
	if err != nil {
		c.logger.Error("erro ao contar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, total, pagination.Page, pagination.PageSize))
}

// Delete remove um fornecedor
// @Summary Excluir fornecedor
// @Description Remove um fornecedor do sistema
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	if err := c.supplierRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, supplierdomain.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao excluir fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor excluído com sucesso", nil))
}
