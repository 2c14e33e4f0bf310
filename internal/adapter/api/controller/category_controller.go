package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/dto"
	categorydomain "github.com/rssarti/PDV-Delivery/internal/domain/category"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo categorydomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria
// @Summary Criar categoria
// @Description Cria uma nova categoria de produtos
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := categorydomain.NewCategory(req.Name, req.Description, req.ParentCategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		return
	}

	if err := c.categoryRepo.Save(ctx, created); err != nil {
		c.logger.Error("erro ao salvar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(created))
}

// Get retorna uma categoria pelo ID
// @Summary Buscar categoria
// @Description Retorna os dados de uma categoria pelo ID
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	found, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, categorydomain.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(found))
}

// List retorna a lista de categorias
// @Summary Listar categorias
// @Description Retorna a lista de categorias paginada
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param only_active query bool false "Somente categorias ativas"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	onlyActive, _ := strconv.ParseBool(ctx.DefaultQuery("only_active", "false"))

	categories, err := c.categoryRepo.List(ctx, onlyActive, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	total, err := c.categoryRepo.Count(ctx, onlyActive)
	if err != nil {
		c.logger.Error("erro ao contar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories, total, pagination.Page, pagination.PageSize))
}

// Delete remove uma categoria
// @Summary Excluir categoria
// @Description Remove uma categoria do sistema
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.categoryRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, categorydomain.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao excluir categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria excluída com sucesso", nil))
}
