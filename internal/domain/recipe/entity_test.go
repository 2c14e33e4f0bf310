package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipe(t *testing.T) *Recipe {
	t.Helper()
	r, err := NewRecipe("prod-1", "Pizza Margherita", "Pizza clássica", 30, 8, "fatias", "Montar e assar")
	require.NoError(t, err)
	return r
}

func TestNewRecipe(t *testing.T) {
	r := newTestRecipe(t)

	assert.NotEmpty(t, r.ID)
	assert.True(t, r.IsActive)
	assert.Empty(t, r.Items)
	assert.Zero(t, r.TotalCost)
}

func TestNewRecipeValidation(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		recName   string
		prepTime  int
		yield     float64
		yieldUnit string
		wantErr   error
	}{
		{"sem produto", "", "Pizza", 30, 8, "fatias", ErrEmptyProductID},
		{"sem nome", "prod-1", " ", 30, 8, "fatias", ErrEmptyName},
		{"tempo inválido", "prod-1", "Pizza", 0, 8, "fatias", ErrInvalidPrepTime},
		{"rendimento inválido", "prod-1", "Pizza", 30, 0, "fatias", ErrInvalidYield},
		{"sem unidade de rendimento", "prod-1", "Pizza", 30, 8, "", ErrEmptyYieldUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecipe(tt.productID, tt.recName, "", tt.prepTime, tt.yield, tt.yieldUnit, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewItemValidation(t *testing.T) {
	_, err := NewItem("", "ing-1", 1, "KG", 2.50, "")
	assert.ErrorIs(t, err, ErrEmptyProductID)

	_, err = NewItem("rec-1", "", 1, "KG", 2.50, "")
	assert.ErrorIs(t, err, ErrEmptyIngredientID)

	_, err = NewItem("rec-1", "ing-1", 0, "KG", 2.50, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewItem("rec-1", "ing-1", 1, "KG", -1, "")
	assert.ErrorIs(t, err, ErrNegativeCost)
}

func TestAddItemRecalculatesTotalCost(t *testing.T) {
	r := newTestRecipe(t)

	flour, err := NewItem(r.ID, "ing-farinha", 0.5, "KG", 4.00, "")
	require.NoError(t, err)
	cheese, err := NewItem(r.ID, "ing-queijo", 0.3, "KG", 30.00, "")
	require.NoError(t, err)

	r.AddItem(flour)
	r.AddItem(cheese)

	assert.Len(t, r.Items, 2)
	assert.InDelta(t, 11.00, r.TotalCost, 0.001)
	assert.True(t, r.HasIngredients())
}

func TestAddItemReplacesSameIngredient(t *testing.T) {
	r := newTestRecipe(t)

	first, err := NewItem(r.ID, "ing-farinha", 0.5, "KG", 4.00, "")
	require.NoError(t, err)
	r.AddItem(first)

	// Mesmo ingrediente substitui em vez de duplicar
	second, err := NewItem(r.ID, "ing-farinha", 1.0, "KG", 4.00, "")
	require.NoError(t, err)
	r.AddItem(second)

	assert.Len(t, r.Items, 1)
	assert.InDelta(t, 4.00, r.TotalCost, 0.001)
	assert.Equal(t, 1.0, r.IngredientByID("ing-farinha").Quantity)
}

func TestRemoveItem(t *testing.T) {
	r := newTestRecipe(t)

	flour, err := NewItem(r.ID, "ing-farinha", 0.5, "KG", 4.00, "")
	require.NoError(t, err)
	cheese, err := NewItem(r.ID, "ing-queijo", 0.3, "KG", 30.00, "")
	require.NoError(t, err)
	r.AddItem(flour)
	r.AddItem(cheese)

	r.RemoveItem("ing-queijo")
	assert.Len(t, r.Items, 1)
	assert.InDelta(t, 2.00, r.TotalCost, 0.001)
	assert.Nil(t, r.IngredientByID("ing-queijo"))

	// Remover ingrediente ausente não altera nada
	r.RemoveItem("ing-inexistente")
	assert.Len(t, r.Items, 1)
}

func TestRecipeCosts(t *testing.T) {
	r := newTestRecipe(t)

	item, err := NewItem(r.ID, "ing-farinha", 2, "KG", 4.00, "")
	require.NoError(t, err)
	r.AddItem(item)

	assert.InDelta(t, 1.00, r.UnitCost(), 0.001, "8.00 / 8 fatias")
	assert.InDelta(t, 7.50, r.LaborCost(), 0.001, "30 min a R$15/h")
	assert.InDelta(t, 15.50, r.EstimatePreparationCost(), 0.001)
}

func TestUpdateYield(t *testing.T) {
	r := newTestRecipe(t)

	require.NoError(t, r.UpdateYield(10, "fatias"))
	assert.Equal(t, 10.0, r.Yield)

	assert.ErrorIs(t, r.UpdateYield(0, "fatias"), ErrInvalidYield)
	assert.Equal(t, 10.0, r.Yield, "falha não altera o rendimento")
}

func TestUpdatePreparationInfo(t *testing.T) {
	r := newTestRecipe(t)

	require.NoError(t, r.UpdatePreparationInfo(45, "Deixar descansar a massa"))
	assert.Equal(t, 45, r.PreparationTime)
	assert.Equal(t, "Deixar descansar a massa", r.Instructions)

	assert.ErrorIs(t, r.UpdatePreparationInfo(-1, ""), ErrInvalidPrepTime)
	assert.Equal(t, 45, r.PreparationTime)
}
