package supplier

import (
	"context"
	"errors"
)

// ErrSupplierNotFound indica que o fornecedor referenciado não existe
var ErrSupplierNotFound = errors.New("fornecedor não encontrado")

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Save persiste um fornecedor (criação ou atualização)
	Save(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista os fornecedores com paginação
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*Supplier, error)

	// Count conta os fornecedores
	Count(ctx context.Context, onlyActive bool) (int, error)

	// Delete remove um fornecedor
	Delete(ctx context.Context, id string) error
}
