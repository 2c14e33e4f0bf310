package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saledomain "github.com/rssarti/PDV-Delivery/internal/domain/sale"
)

func newOpenSale(t *testing.T, repo *fakeSaleRepo) *saledomain.Sale {
	t.Helper()
	s, err := saledomain.NewSale([]saledomain.Item{{ProductID: "prod-1", Quantity: 1}}, 20.00, "PIX", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

func TestCancelSale(t *testing.T) {
	repo := newFakeSaleRepo()
	s := newOpenSale(t, repo)
	uc := NewCancelSaleUseCase(repo)

	require.NoError(t, uc.Execute(context.Background(), s.ID, "pedido duplicado"))

	cancelled, err := repo.FindByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled())
	assert.Equal(t, "pedido duplicado", cancelled.CancelReason)
}

func TestCancelSaleValidation(t *testing.T) {
	uc := NewCancelSaleUseCase(newFakeSaleRepo())
	ctx := context.Background()

	assert.ErrorIs(t, uc.Execute(ctx, "", "motivo"), ErrMissingSaleID)
	assert.ErrorIs(t, uc.Execute(ctx, "sale-1", ""), ErrMissingReason)
	assert.ErrorIs(t, uc.Execute(ctx, "missing", "motivo"), saledomain.ErrSaleNotFound)
}

func TestCancelSaleAlreadyCancelled(t *testing.T) {
	repo := newFakeSaleRepo()
	s := newOpenSale(t, repo)
	uc := NewCancelSaleUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, s.ID, "motivo original"))

	// Segundo cancelamento falha e o motivo original é preservado
	assert.ErrorIs(t, uc.Execute(ctx, s.ID, "outro motivo"), saledomain.ErrAlreadyCancelled)
	cancelled, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "motivo original", cancelled.CancelReason)
}

func TestBulkCancelSales(t *testing.T) {
	repo := newFakeSaleRepo()
	first := newOpenSale(t, repo)
	second := newOpenSale(t, repo)
	uc := NewBulkCancelSalesUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, []string{first.ID, second.ID}, "encerramento do dia"))

	for _, id := range []string{first.ID, second.ID} {
		s, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, s.IsCancelled())
	}
}

func TestBulkCancelSalesSkipsCancelled(t *testing.T) {
	repo := newFakeSaleRepo()
	open := newOpenSale(t, repo)
	done := newOpenSale(t, repo)
	require.NoError(t, done.Cancel("motivo original"))

	uc := NewBulkCancelSalesUseCase(repo)
	require.NoError(t, uc.Execute(context.Background(), []string{open.ID, done.ID}, "novo motivo"))

	assert.Equal(t, "novo motivo", open.CancelReason)
	assert.Equal(t, "motivo original", done.CancelReason, "venda já cancelada mantém o motivo")
}

func TestBulkCancelSalesValidation(t *testing.T) {
	uc := NewBulkCancelSalesUseCase(newFakeSaleRepo())
	ctx := context.Background()

	assert.ErrorIs(t, uc.Execute(ctx, nil, "motivo"), ErrMissingSaleID)
	assert.ErrorIs(t, uc.Execute(ctx, []string{"sale-1"}, ""), ErrMissingReason)
}
