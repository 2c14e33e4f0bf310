package product

import (
	"context"
	"errors"
)

// ErrProductNotFound indica que o produto referenciado não existe
var ErrProductNotFound = errors.New("produto não encontrado")

// Filter reúne os filtros de listagem de produtos
type Filter struct {
	CategoryID  string
	Type        Type
	StockStatus StockStatus
	OnlyActive  bool
	Limit       int
	Offset      int
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Save persiste um produto (criação ou atualização)
	Save(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByInternalCode busca um produto pelo código interno
	FindByInternalCode(ctx context.Context, internalCode string) (*Product, error)

	// FindByEANCode busca um produto pelo código EAN
	FindByEANCode(ctx context.Context, eanCode string) (*Product, error)

	// FindByName busca produtos cujo nome contém o termo
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Product, error)

	// List lista os produtos aplicando os filtros
	List(ctx context.Context, filter Filter) ([]*Product, error)

	// Count conta os produtos aplicando os filtros
	Count(ctx context.Context, filter Filter) (int, error)

	// Delete remove um produto
	Delete(ctx context.Context, id string) error
}
