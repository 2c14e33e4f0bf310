package recipe

import (
	"context"
	"errors"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
	recipedomain "github.com/rssarti/PDV-Delivery/internal/domain/recipe"
)

// ErrRecipeAlreadyExists indica que o produto já possui uma receita
var ErrRecipeAlreadyExists = errors.New("produto já possui uma receita cadastrada")

// RecipeItemInput reúne os campos de um ingrediente recebidos na requisição
type RecipeItemInput struct {
	IngredientProductID string
	Quantity            float64
	Unit                string
	Cost                float64
	Notes               string
}

// CreateRecipeRequest reúne os dados de entrada para criação de uma receita
type CreateRecipeRequest struct {
	ProductID       string
	Name            string
	Description     string
	PreparationTime int
	Yield           float64
	YieldUnit       string
	Instructions    string
	Items           []RecipeItemInput
}

// CreateRecipeUseCase cria a ficha técnica de um produto final
type CreateRecipeUseCase struct {
	recipes  recipedomain.Repository
	products productdomain.Repository
}

// NewCreateRecipeUseCase cria uma nova instância do caso de uso
func NewCreateRecipeUseCase(recipes recipedomain.Repository, products productdomain.Repository) *CreateRecipeUseCase {
	return &CreateRecipeUseCase{
		recipes:  recipes,
		products: products,
	}
}

// Execute valida o produto e os ingredientes, monta a receita e persiste
func (uc *CreateRecipeUseCase) Execute(ctx context.Context, req CreateRecipeRequest) (*recipedomain.Recipe, error) {
	if _, err := uc.products.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	existing, err := uc.recipes.FindByProduct(ctx, req.ProductID)
	if err != nil && !errors.Is(err, recipedomain.ErrRecipeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRecipeAlreadyExists
	}

	r, err := recipedomain.NewRecipe(
		req.ProductID,
		req.Name,
		req.Description,
		req.PreparationTime,
		req.Yield,
		req.YieldUnit,
		req.Instructions,
	)
	if err != nil {
		return nil, err
	}

	for _, input := range req.Items {
		if _, err := uc.products.FindByID(ctx, input.IngredientProductID); err != nil {
			return nil, err
		}

		item, err := recipedomain.NewItem(r.ID, input.IngredientProductID, input.Quantity, input.Unit, input.Cost, input.Notes)
		if err != nil {
			return nil, err
		}
		r.AddItem(item)
	}

	if err := uc.recipes.Save(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// GetRecipeUseCase busca uma receita pelo ID
type GetRecipeUseCase struct {
	recipes recipedomain.Repository
}

// NewGetRecipeUseCase cria uma nova instância do caso de uso
func NewGetRecipeUseCase(recipes recipedomain.Repository) *GetRecipeUseCase {
	return &GetRecipeUseCase{recipes: recipes}
}

// Execute retorna a receita ou recipe.ErrRecipeNotFound
func (uc *GetRecipeUseCase) Execute(ctx context.Context, id string) (*recipedomain.Recipe, error) {
	return uc.recipes.FindByID(ctx, id)
}
