package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Save persiste um cliente (criação ou atualização)
	Save(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// FindByEmail busca um cliente pelo email
	FindByEmail(ctx context.Context, email string) (*Client, error)

	// FindByDocument busca um cliente pelo documento (CPF/CNPJ)
	FindByDocument(ctx context.Context, document string) (*Client, error)

	// List lista os clientes com paginação, opcionalmente filtrando por status
	List(ctx context.Context, status Status, limit, offset int) ([]*Client, error)

	// Count conta os clientes, opcionalmente filtrando por status
	Count(ctx context.Context, status Status) (int, error)

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error
}

// AdditionalAddressRepository define a interface para operações de
// repositório de endereços adicionais
type AdditionalAddressRepository interface {
	// Save persiste um endereço adicional (criação ou atualização)
	Save(ctx context.Context, a *AdditionalAddress) error

	// FindByID busca um endereço adicional pelo ID
	FindByID(ctx context.Context, id string) (*AdditionalAddress, error)

	// FindByClient lista os endereços adicionais de um cliente, ordenados
	// por uso mais recente e depois por criação mais recente
	FindByClient(ctx context.Context, clientID string) ([]*AdditionalAddress, error)

	// FindByClientAndAddress busca um endereço adicional estruturalmente
	// idêntico já salvo para o cliente
	FindByClientAndAddress(ctx context.Context, clientID string, address Address) (*AdditionalAddress, error)

	// Delete remove um endereço adicional
	Delete(ctx context.Context, id string) error
}
