package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
	recipedomain "github.com/rssarti/PDV-Delivery/internal/domain/recipe"
)

type fakeRecipeRepo struct {
	recipes map[string]*recipedomain.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]*recipedomain.Recipe)}
}

func (r *fakeRecipeRepo) Save(ctx context.Context, rec *recipedomain.Recipe) error {
	r.recipes[rec.ID] = rec
	return nil
}

func (r *fakeRecipeRepo) FindByID(ctx context.Context, id string) (*recipedomain.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, recipedomain.ErrRecipeNotFound
	}
	return rec, nil
}

func (r *fakeRecipeRepo) FindByProduct(ctx context.Context, productID string) (*recipedomain.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ProductID == productID {
			return rec, nil
		}
	}
	return nil, recipedomain.ErrRecipeNotFound
}

func (r *fakeRecipeRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*recipedomain.Recipe, error) {
	var out []*recipedomain.Recipe
	for _, rec := range r.recipes {
		if !onlyActive || rec.IsActive {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.recipes[id]; !ok {
		return recipedomain.ErrRecipeNotFound
	}
	delete(r.recipes, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*productdomain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*productdomain.Product)}
}

func (r *fakeProductRepo) Save(ctx context.Context, p *productdomain.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*productdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindByInternalCode(ctx context.Context, internalCode string) (*productdomain.Product, error) {
	return nil, productdomain.ErrProductNotFound
}

func (r *fakeProductRepo) FindByEANCode(ctx context.Context, eanCode string) (*productdomain.Product, error) {
	return nil, productdomain.ErrProductNotFound
}

func (r *fakeProductRepo) FindByName(ctx context.Context, name string, limit, offset int) ([]*productdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter productdomain.Filter) ([]*productdomain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, filter productdomain.Filter) (int, error) {
	return len(r.products), nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func newIngredient(t *testing.T, products *fakeProductRepo, name string, costPrice, baseQuantity float64) *productdomain.Product {
	t.Helper()
	p, err := productdomain.NewProduct(productdomain.Props{
		Name:       name,
		Type:       productdomain.TypeInsumo,
		CategoryID: "cat-1",
		Unit:       productdomain.Unit{BaseUnit: productdomain.UnitKG, BaseQuantity: baseQuantity},
		Pricing:    productdomain.Pricing{CostPrice: costPrice, SalePrice: costPrice * 2},
	})
	require.NoError(t, err)
	require.NoError(t, products.Save(context.Background(), p))
	return p
}

func TestCalculateRecipeCost(t *testing.T) {
	recipes := newFakeRecipeRepo()
	products := newFakeProductRepo()
	ctx := context.Background()

	ingredient := newIngredient(t, products, "Farinha de Trigo", 10.00, 1)

	r, err := recipedomain.NewRecipe("prod-final", "Massa de Pizza", "", 30, 10, "porções", "")
	require.NoError(t, err)
	item, err := recipedomain.NewItem(r.ID, ingredient.ID, 3, "KG", 0, "")
	require.NoError(t, err)
	r.AddItem(item)
	require.NoError(t, recipes.Save(ctx, r))

	uc := NewCalculateRecipeCostUseCase(recipes, products)
	result, err := uc.Execute(ctx, r.ID)
	require.NoError(t, err)

	// 10.00 / 1 × 3 = 30.00 de ingredientes; 30 min a R$15/h = 7.50
	assert.InDelta(t, 30.00, result.IngredientsCost, 0.001)
	assert.InDelta(t, 7.50, result.LaborCost, 0.001)
	assert.InDelta(t, 37.50, result.TotalCost, 0.001)
	assert.InDelta(t, 3.75, result.UnitCost, 0.001)
	assert.InDelta(t, 41.25, result.EstimatedCost, 0.001)
	assert.InDelta(t, 30.0, result.ProfitMargin, 0.001)
	assert.InDelta(t, 4.875, result.SuggestedPrice, 0.001)
}

func TestCalculateRecipeCostUsesBaseQuantity(t *testing.T) {
	recipes := newFakeRecipeRepo()
	products := newFakeProductRepo()
	ctx := context.Background()

	// Custo de R$20 por pacote de 2kg: R$10 por kg
	ingredient := newIngredient(t, products, "Mussarela", 20.00, 2)

	r, err := recipedomain.NewRecipe("prod-final", "Pizza Mussarela", "", 60, 8, "fatias", "")
	require.NoError(t, err)
	item, err := recipedomain.NewItem(r.ID, ingredient.ID, 0.5, "KG", 0, "")
	require.NoError(t, err)
	r.AddItem(item)
	require.NoError(t, recipes.Save(ctx, r))

	uc := NewCalculateRecipeCostUseCase(recipes, products)
	result, err := uc.Execute(ctx, r.ID)
	require.NoError(t, err)

	assert.InDelta(t, 5.00, result.IngredientsCost, 0.001)
	assert.InDelta(t, 15.00, result.LaborCost, 0.001)
}

func TestCalculateRecipeCostSkipsMissingIngredients(t *testing.T) {
	recipes := newFakeRecipeRepo()
	products := newFakeProductRepo()
	ctx := context.Background()

	ingredient := newIngredient(t, products, "Farinha de Trigo", 10.00, 1)

	r, err := recipedomain.NewRecipe("prod-final", "Massa de Pizza", "", 30, 10, "porções", "")
	require.NoError(t, err)

	kept, err := recipedomain.NewItem(r.ID, ingredient.ID, 1, "KG", 0, "")
	require.NoError(t, err)
	removed, err := recipedomain.NewItem(r.ID, "ing-removido", 5, "KG", 0, "")
	require.NoError(t, err)
	r.AddItem(kept)
	r.AddItem(removed)
	require.NoError(t, recipes.Save(ctx, r))

	uc := NewCalculateRecipeCostUseCase(recipes, products)
	result, err := uc.Execute(ctx, r.ID)
	require.NoError(t, err)

	// Ingrediente que não resolve mais no catálogo é ignorado
	assert.InDelta(t, 10.00, result.IngredientsCost, 0.001)
}

func TestCalculateRecipeCostNotFound(t *testing.T) {
	uc := NewCalculateRecipeCostUseCase(newFakeRecipeRepo(), newFakeProductRepo())

	_, err := uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, recipedomain.ErrRecipeNotFound)
}
