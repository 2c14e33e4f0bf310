package recipe

import (
	"context"
	"errors"
)

// ErrRecipeNotFound indica que a receita referenciada não existe
var ErrRecipeNotFound = errors.New("receita não encontrada")

// Repository define a interface para operações de repositório de receitas
type Repository interface {
	// Save persiste a receita e seus itens (criação ou atualização)
	Save(ctx context.Context, r *Recipe) error

	// FindByID busca uma receita pelo ID, com seus itens
	FindByID(ctx context.Context, id string) (*Recipe, error)

	// FindByProduct busca a receita de um produto final
	FindByProduct(ctx context.Context, productID string) (*Recipe, error)

	// List lista as receitas com paginação
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*Recipe, error)

	// Delete remove uma receita e seus itens
	Delete(ctx context.Context, id string) error
}
