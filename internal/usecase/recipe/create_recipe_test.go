package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
)

func validCreateRequest(productID, ingredientID string) CreateRecipeRequest {
	return CreateRecipeRequest{
		ProductID:       productID,
		Name:            "Pizza Margherita",
		PreparationTime: 30,
		Yield:           8,
		YieldUnit:       "fatias",
		Items: []RecipeItemInput{
			{IngredientProductID: ingredientID, Quantity: 0.5, Unit: "KG", Cost: 4.00},
		},
	}
}

func TestCreateRecipe(t *testing.T) {
	recipes := newFakeRecipeRepo()
	products := newFakeProductRepo()
	ctx := context.Background()

	final := newIngredient(t, products, "Pizza Margherita", 8.00, 1)
	ingredient := newIngredient(t, products, "Farinha de Trigo", 4.00, 1)

	uc := NewCreateRecipeUseCase(recipes, products)
	r, err := uc.Execute(ctx, validCreateRequest(final.ID, ingredient.ID))
	require.NoError(t, err)

	assert.Equal(t, final.ID, r.ProductID)
	assert.Len(t, r.Items, 1)
	assert.InDelta(t, 2.00, r.TotalCost, 0.001)
	assert.Len(t, recipes.recipes, 1)
}

func TestCreateRecipeProductNotFound(t *testing.T) {
	uc := NewCreateRecipeUseCase(newFakeRecipeRepo(), newFakeProductRepo())

	_, err := uc.Execute(context.Background(), validCreateRequest("missing", "ing-1"))
	assert.ErrorIs(t, err, productdomain.ErrProductNotFound)
}

func TestCreateRecipeIngredientNotFound(t *testing.T) {
	recipes := newFakeRecipeRepo()
	products := newFakeProductRepo()

	final := newIngredient(t, products, "Pizza Margherita", 8.00, 1)

	uc := NewCreateRecipeUseCase(recipes, products)
	_, err := uc.Execute(context.Background(), validCreateRequest(final.ID, "ing-missing"))
	assert.ErrorIs(t, err, productdomain.ErrProductNotFound)
	assert.Empty(t, recipes.recipes)
}

func TestCreateRecipeAlreadyExists(t *testing.T) {
	recipes := newFakeRecipeRepo()
	products := newFakeProductRepo()
	ctx := context.Background()

	final := newIngredient(t, products, "Pizza Margherita", 8.00, 1)
	ingredient := newIngredient(t, products, "Farinha de Trigo", 4.00, 1)

	uc := NewCreateRecipeUseCase(recipes, products)
	_, err := uc.Execute(ctx, validCreateRequest(final.ID, ingredient.ID))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validCreateRequest(final.ID, ingredient.ID))
	assert.ErrorIs(t, err, ErrRecipeAlreadyExists)
	assert.Len(t, recipes.recipes, 1)
}
