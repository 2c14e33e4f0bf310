package product

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
)

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
	for _, p := range r.products {
		if p.InternalCode == internalCode {
			return p, nil
		}
	}
	return nil, productdomain.ErrProductNotFound
}

func (r *fakeProductRepo) FindByEANCode(ctx context.Context, eanCode string) (*productdomain.Product, error) {
	for _, p := range r.products {
		if p.EANCode == eanCode {
			return p, nil
		}
	}
	return nil, productdomain.ErrProductNotFound
}

func (r *fakeProductRepo) FindByName(ctx context.Context, name string, limit, offset int) ([]*productdomain.Product, error) {
	var out []*productdomain.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter productdomain.Filter) ([]*productdomain.Product, error) {
	var out []*productdomain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, filter productdomain.Filter) (int, error) {
	return len(r.products), nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return productdomain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func newStockedProduct(t *testing.T, repo *fakeProductRepo, stock float64) *productdomain.Product {
	t.Helper()
	p, err := productdomain.NewProduct(productdomain.Props{
		Name:         "Queijo Mussarela",
		Type:         productdomain.TypeInsumo,
		CategoryID:   "cat-1",
		Unit:         productdomain.Unit{BaseUnit: productdomain.UnitKG, BaseQuantity: 1},
		Pricing:      productdomain.Pricing{CostPrice: 25.00, SalePrice: 40.00},
		CurrentStock: stock,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestUpdateStockAdd(t *testing.T) {
	repo := newFakeProductRepo()
	p := newStockedProduct(t, repo, 5)
	uc := NewUpdateStockUseCase(repo)

	updated, err := uc.Execute(context.Background(), UpdateStockRequest{
		ProductID:   p.ID,
		Quantity:    10,
		Operation:   OperationAdd,
		BatchNumber: "L-2024-07",
	})
	require.NoError(t, err)

	assert.Equal(t, 15.0, updated.CurrentStock)
	assert.Equal(t, "L-2024-07", updated.BatchNumber)
}

func TestUpdateStockRemove(t *testing.T) {
	repo := newFakeProductRepo()
	p := newStockedProduct(t, repo, 5)
	uc := NewUpdateStockUseCase(repo)

	updated, err := uc.Execute(context.Background(), UpdateStockRequest{
		ProductID: p.ID,
		Quantity:  5,
		Operation: OperationRemove,
	})
	require.NoError(t, err)

	assert.Zero(t, updated.CurrentStock)
	assert.Equal(t, productdomain.StockEsgotado, updated.StockStatus)
}

func TestUpdateStockInsufficient(t *testing.T) {
	repo := newFakeProductRepo()
	p := newStockedProduct(t, repo, 5)
	uc := NewUpdateStockUseCase(repo)

	_, err := uc.Execute(context.Background(), UpdateStockRequest{
		ProductID: p.ID,
		Quantity:  50,
		Operation: OperationRemove,
	})
	assert.ErrorIs(t, err, productdomain.ErrInsufficientStock)

	// O estoque persistido permanece inalterado
	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.CurrentStock)
}

func TestUpdateStockInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	p := newStockedProduct(t, repo, 5)
	uc := NewUpdateStockUseCase(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, UpdateStockRequest{ProductID: p.ID, Quantity: 0, Operation: OperationAdd})
	assert.ErrorIs(t, err, productdomain.ErrInvalidQuantity)

	_, err = uc.Execute(ctx, UpdateStockRequest{ProductID: p.ID, Quantity: 1, Operation: "TRANSFER"})
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = uc.Execute(ctx, UpdateStockRequest{ProductID: "missing", Quantity: 1, Operation: OperationAdd})
	assert.ErrorIs(t, err, productdomain.ErrProductNotFound)
}
