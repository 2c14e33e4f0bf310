package dto

import (
	"time"

	"github.com/rssarti/PDV-Delivery/internal/domain/recipe"
	recipeusecase "github.com/rssarti/PDV-Delivery/internal/usecase/recipe"
)

// RecipeItemRequest representa a requisição de ingrediente da receita
type RecipeItemRequest struct {
	IngredientProductID string  `json:"ingredient_product_id" binding:"required"`
	Quantity            float64 `json:"quantity" binding:"required"`
	Unit                string  `json:"unit"`
	Cost                float64 `json:"cost"`
	Notes               string  `json:"notes"`
}

// RecipeRequest representa a requisição de receita
type RecipeRequest struct {
	ProductID       string              `json:"product_id" binding:"required"`
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	PreparationTime int                 `json:"preparation_time" binding:"required"`
	Yield           float64             `json:"yield" binding:"required"`
	YieldUnit       string              `json:"yield_unit" binding:"required"`
	Instructions    string              `json:"instructions"`
	Items           []RecipeItemRequest `json:"items"`
}

// ToCreateRecipeRequest converte a requisição para a entrada do caso de uso
func (r RecipeRequest) ToCreateRecipeRequest() recipeusecase.CreateRecipeRequest {
	items := make([]recipeusecase.RecipeItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = recipeusecase.RecipeItemInput{
			IngredientProductID: item.IngredientProductID,
			Quantity:            item.Quantity,
			Unit:                item.Unit,
			Cost:                item.Cost,
			Notes:               item.Notes,
		}
	}

	return recipeusecase.CreateRecipeRequest{
		ProductID:       r.ProductID,
		Name:            r.Name,
		Description:     r.Description,
		PreparationTime: r.PreparationTime,
		Yield:           r.Yield,
		YieldUnit:       r.YieldUnit,
		Instructions:    r.Instructions,
		Items:           items,
	}
}

// RecipeItemResponse representa a resposta de ingrediente da receita
type RecipeItemResponse struct {
	ID                  string  `json:"id"`
	IngredientProductID string  `json:"ingredient_product_id"`
	Quantity            float64 `json:"quantity"`
	Unit                string  `json:"unit"`
	Cost                float64 `json:"cost"`
	ItemCost            float64 `json:"item_cost"`
	Notes               string  `json:"notes,omitempty"`
}

// RecipeResponse representa a resposta de receita
type RecipeResponse struct {
	ID              string               `json:"id"`
	ProductID       string               `json:"product_id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	PreparationTime int                  `json:"preparation_time"`
	Yield           float64              `json:"yield"`
	YieldUnit       string               `json:"yield_unit"`
	Instructions    string               `json:"instructions,omitempty"`
	TotalCost       float64              `json:"total_cost"`
	UnitCost        float64              `json:"unit_cost"`
	IsActive        bool                 `json:"is_active"`
	Items           []RecipeItemResponse `json:"items"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// RecipeCostResponse representa a resposta do cálculo de custo da receita
type RecipeCostResponse struct {
	RecipeID        string  `json:"recipe_id"`
	RecipeName      string  `json:"recipe_name"`
	IngredientsCost float64 `json:"ingredients_cost"`
	LaborCost       float64 `json:"labor_cost"`
	TotalCost       float64 `json:"total_cost"`
	UnitCost        float64 `json:"unit_cost"`
	EstimatedCost   float64 `json:"estimated_cost"`
	ProfitMargin    float64 `json:"profit_margin"`
	SuggestedPrice  float64 `json:"suggested_price"`
}

// ToRecipeResponse converte uma receita do domínio para DTO
func ToRecipeResponse(r *recipe.Recipe) *RecipeResponse {
	items := make([]RecipeItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = RecipeItemResponse{
			ID:                  item.ID,
			IngredientProductID: item.IngredientProductID,
			Quantity:            item.Quantity,
			Unit:                item.Unit,
			Cost:                item.Cost,
			ItemCost:            item.ItemCost(),
			Notes:               item.Notes,
		}
	}

	return &RecipeResponse{
		ID:              r.ID,
		ProductID:       r.ProductID,
		Name:            r.Name,
		Description:     r.Description,
		PreparationTime: r.PreparationTime,
		Yield:           r.Yield,
		YieldUnit:       r.YieldUnit,
		Instructions:    r.Instructions,
		TotalCost:       r.TotalCost,
		UnitCost:        r.UnitCost(),
		IsActive:        r.IsActive,
		Items:           items,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToRecipeCostResponse converte o resultado do cálculo de custo para DTO
func ToRecipeCostResponse(result *recipeusecase.RecipeCostResult) *RecipeCostResponse {
	return &RecipeCostResponse{
		RecipeID:        result.Recipe.ID,
		RecipeName:      result.Recipe.Name,
		IngredientsCost: result.IngredientsCost,
		LaborCost:       result.LaborCost,
		TotalCost:       result.TotalCost,
		UnitCost:        result.UnitCost,
		EstimatedCost:   result.EstimatedCost,
		ProfitMargin:    result.ProfitMargin,
		SuggestedPrice:  result.SuggestedPrice,
	}
}
