package category

import (
	"context"
	"errors"
)

// ErrCategoryNotFound indica que a categoria referenciada não existe
var ErrCategoryNotFound = errors.New("categoria não encontrada")

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Save persiste uma categoria (criação ou atualização)
	Save(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)

	// List lista as categorias com paginação
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*Category, error)

	// Count conta as categorias
	Count(ctx context.Context, onlyActive bool) (int, error)

	// Delete remove uma categoria
	Delete(ctx context.Context, id string) error
}
