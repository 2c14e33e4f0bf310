package sale

import (
	"context"

	saledomain "github.com/rssarti/PDV-Delivery/internal/domain/sale"
)

// GetSaleUseCase busca uma venda pelo ID
type GetSaleUseCase struct {
	sales saledomain.Repository
}

// NewGetSaleUseCase cria uma nova instância do caso de uso
func NewGetSaleUseCase(sales saledomain.Repository) *GetSaleUseCase {
	return &GetSaleUseCase{sales: sales}
}

// Execute retorna a venda ou sale.ErrSaleNotFound
func (uc *GetSaleUseCase) Execute(ctx context.Context, id string) (*saledomain.Sale, error) {
	if id == "" {
		return nil, ErrMissingSaleID
	}

	return uc.sales.FindByID(ctx, id)
}

// ListSalesUseCase lista vendas com paginação e filtro por status
type ListSalesUseCase struct {
	sales saledomain.Repository
}

// NewListSalesUseCase cria uma nova instância do caso de uso
func NewListSalesUseCase(sales saledomain.Repository) *ListSalesUseCase {
	return &ListSalesUseCase{sales: sales}
}

// Execute lista as vendas. Sem limite informado, usa 50.
func (uc *ListSalesUseCase) Execute(ctx context.Context, opts saledomain.ListOptions) ([]*saledomain.Sale, int, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	sales, err := uc.sales.FindAll(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.sales.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}
