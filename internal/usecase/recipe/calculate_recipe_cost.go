package recipe

import (
	"context"
	"errors"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
	recipedomain "github.com/rssarti/PDV-Delivery/internal/domain/recipe"
)

// Constantes do cálculo de custo da receita
const (
	// ProfitMargin é a margem de lucro aplicada sobre o custo unitário
	// para sugerir o preço de venda.
	ProfitMargin = 0.30

	// EstimateFactor é a folga aplicada ao custo total na estimativa
	// (perdas e variação de insumos).
	EstimateFactor = 1.1
)

// RecipeCostResult é o detalhamento do custo de uma receita
type RecipeCostResult struct {
	Recipe          *recipedomain.Recipe `json:"recipe"`
	IngredientsCost float64              `json:"ingredients_cost"`
	LaborCost       float64              `json:"labor_cost"`
	TotalCost       float64              `json:"total_cost"`
	UnitCost        float64              `json:"unit_cost"`
	EstimatedCost   float64              `json:"estimated_cost"`
	ProfitMargin    float64              `json:"profit_margin"` // Percentual
	SuggestedPrice  float64              `json:"suggested_price"`
}

// CalculateRecipeCostUseCase calcula o custo de uma receita a partir do
// preço de custo atual de cada ingrediente, somado ao custo de mão de obra.
type CalculateRecipeCostUseCase struct {
	recipes  recipedomain.Repository
	products productdomain.Repository
}

// NewCalculateRecipeCostUseCase cria uma nova instância do caso de uso
func NewCalculateRecipeCostUseCase(recipes recipedomain.Repository, products productdomain.Repository) *CalculateRecipeCostUseCase {
	return &CalculateRecipeCostUseCase{
		recipes:  recipes,
		products: products,
	}
}

// Execute calcula o custo da receita. O custo unitário de cada ingrediente
// é o preço de custo dividido pela quantidade base da unidade de medida;
// ingredientes que não resolvem mais no catálogo são ignorados.
func (uc *CalculateRecipeCostUseCase) Execute(ctx context.Context, recipeID string) (*RecipeCostResult, error) {
	r, err := uc.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ingredientsCost := 0.0
	for _, item := range r.Items {
		ingredient, err := uc.products.FindByID(ctx, item.IngredientProductID)
		if err != nil {
			if errors.Is(err, productdomain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		unitCost := ingredient.Pricing.CostPrice / ingredient.Unit.BaseQuantity
		ingredientsCost += unitCost * item.Quantity
	}

	laborCost := (float64(r.PreparationTime) / 60) * recipedomain.HourlyLaborRate
	totalCost := ingredientsCost + laborCost
	unitCost := totalCost / r.Yield
	suggestedPrice := unitCost * (1 + ProfitMargin)

	return &RecipeCostResult{
		Recipe:          r,
		IngredientsCost: ingredientsCost,
		LaborCost:       laborCost,
		TotalCost:       totalCost,
		UnitCost:        unitCost,
		EstimatedCost:   totalCost * EstimateFactor,
		ProfitMargin:    ProfitMargin * 100,
		SuggestedPrice:  suggestedPrice,
	}, nil
}
