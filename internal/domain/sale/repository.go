package sale

import (
	"context"
	"errors"
)

// ErrSaleNotFound indica que a venda referenciada não existe
var ErrSaleNotFound = errors.New("Sale not found")

// ListOptions reúne os filtros de listagem de vendas
type ListOptions struct {
	Status Status
	Limit  int
	Offset int
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Save persiste uma venda (criação ou atualização)
	Save(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindAll lista as vendas aplicando os filtros
	FindAll(ctx context.Context, opts ListOptions) ([]*Sale, error)

	// Count conta as vendas aplicando os filtros
	Count(ctx context.Context, opts ListOptions) (int, error)

	// Cancel marca uma venda como cancelada com o motivo informado
	Cancel(ctx context.Context, id, reason string) error

	// BulkCancel cancela um conjunto de vendas com o mesmo motivo
	BulkCancel(ctx context.Context, ids []string, reason string) error
}
