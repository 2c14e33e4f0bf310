package product

import (
	"context"
	"strings"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
)

// GetProductUseCase busca um produto pelo ID
type GetProductUseCase struct {
	products productdomain.Repository
}

// NewGetProductUseCase cria uma nova instância do caso de uso
func NewGetProductUseCase(products productdomain.Repository) *GetProductUseCase {
	return &GetProductUseCase{products: products}
}

// Execute retorna o produto ou product.ErrProductNotFound
func (uc *GetProductUseCase) Execute(ctx context.Context, id string) (*productdomain.Product, error) {
	return uc.products.FindByID(ctx, id)
}

// ListProductsUseCase lista produtos aplicando filtros e paginação
type ListProductsUseCase struct {
	products productdomain.Repository
}

// NewListProductsUseCase cria uma nova instância do caso de uso
func NewListProductsUseCase(products productdomain.Repository) *ListProductsUseCase {
	return &ListProductsUseCase{products: products}
}

// Execute lista os produtos e o total para paginação
func (uc *ListProductsUseCase) Execute(ctx context.Context, filter productdomain.Filter) ([]*productdomain.Product, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	products, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// SearchProductsUseCase busca produtos pelo nome
type SearchProductsUseCase struct {
	products productdomain.Repository
}

// NewSearchProductsUseCase cria uma nova instância do caso de uso
func NewSearchProductsUseCase(products productdomain.Repository) *SearchProductsUseCase {
	return &SearchProductsUseCase{products: products}
}

// Execute busca produtos cujo nome contém o termo informado
func (uc *SearchProductsUseCase) Execute(ctx context.Context, term string, limit, offset int) ([]*productdomain.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*productdomain.Product{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	return uc.products.FindByName(ctx, term, limit, offset)
}
