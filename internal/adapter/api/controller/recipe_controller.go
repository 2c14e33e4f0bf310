package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/dto"
	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
	recipedomain "github.com/rssarti/PDV-Delivery/internal/domain/recipe"
	recipeusecase "github.com/rssarti/PDV-Delivery/internal/usecase/recipe"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// RecipeController gerencia as requisições relacionadas a receitas
type RecipeController struct {
	createRecipe  *recipeusecase.CreateRecipeUseCase
	getRecipe     *recipeusecase.GetRecipeUseCase
	calculateCost *recipeusecase.CalculateRecipeCostUseCase
	logger        logger.Logger
}

// NewRecipeController cria uma nova instância de RecipeController
func NewRecipeController(
	createRecipe *recipeusecase.CreateRecipeUseCase,
	getRecipe *recipeusecase.GetRecipeUseCase,
	calculateCost *recipeusecase.CalculateRecipeCostUseCase,
	logger logger.Logger,
) *RecipeController {
	return &RecipeController{
		createRecipe:  createRecipe,
		getRecipe:     getRecipe,
		calculateCost: calculateCost,
		logger:        logger,
	}
}

// Create cria uma nova receita
// @Summary Criar receita
// @Description Cria a ficha técnica de um produto final
// @Tags recipes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param recipe body dto.RecipeRequest true "Dados da receita"
// @Success 201 {object} dto.RecipeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes [post]
func (c *RecipeController) Create(ctx *gin.Context) {
	var req dto.RecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.createRecipe.Execute(ctx, req.ToCreateRecipeRequest())
	if err != nil {
		switch {
		case errors.Is(err, recipeusecase.ErrRecipeAlreadyExists):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		case errors.Is(err, productdomain.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		case errors.Is(err, recipedomain.ErrEmptyProductID),
			errors.Is(err, recipedomain.ErrEmptyName),
			errors.Is(err, recipedomain.ErrNameTooLong),
			errors.Is(err, recipedomain.ErrInvalidPrepTime),
			errors.Is(err, recipedomain.ErrInvalidYield),
			errors.Is(err, recipedomain.ErrEmptyYieldUnit),
			errors.Is(err, recipedomain.ErrEmptyIngredientID),
			errors.Is(err, recipedomain.ErrInvalidQuantity),
			errors.Is(err, recipedomain.ErrNegativeCost):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.logger.Error("erro ao criar receita", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar receita", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecipeResponse(created))
}

// Get retorna uma receita pelo ID
// @Summary Buscar receita
// @Description Retorna os dados de uma receita pelo ID, com seus ingredientes
// @Tags recipes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da receita"
// @Success 200 {object} dto.RecipeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/{id} [get]
func (c *RecipeController) Get(ctx *gin.Context) {
	found, err := c.getRecipe.Execute(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, recipedomain.ErrRecipeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao buscar receita", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(found))
}

// CalculateCost calcula o custo detalhado da receita
// @Summary Calcular custo da receita
// @Description Calcula custo de ingredientes, mão de obra e preço sugerido
// @Tags recipes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da receita"
// @Success 200 {object} dto.RecipeCostResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/{id}/cost [get]
func (c *RecipeController) CalculateCost(ctx *gin.Context) {
	result, err := c.calculateCost.Execute(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, recipedomain.ErrRecipeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao calcular custo da receita", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular custo da receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeCostResponse(result))
}
