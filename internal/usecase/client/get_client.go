package client

import (
	"context"

	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
)

// GetClientUseCase busca um cliente pelo ID
type GetClientUseCase struct {
	clients clientdomain.Repository
}

// NewGetClientUseCase cria uma nova instância do caso de uso
func NewGetClientUseCase(clients clientdomain.Repository) *GetClientUseCase {
	return &GetClientUseCase{clients: clients}
}

// Execute retorna o cliente ou client.ErrClientNotFound
func (uc *GetClientUseCase) Execute(ctx context.Context, id string) (*clientdomain.Client, error) {
	return uc.clients.FindByID(ctx, id)
}

// ListClientsUseCase lista clientes com paginação e filtro por status
type ListClientsUseCase struct {
	clients clientdomain.Repository
}

// NewListClientsUseCase cria uma nova instância do caso de uso
func NewListClientsUseCase(clients clientdomain.Repository) *ListClientsUseCase {
	return &ListClientsUseCase{clients: clients}
}

// Execute lista os clientes e o total para paginação
func (uc *ListClientsUseCase) Execute(ctx context.Context, status clientdomain.Status, limit, offset int) ([]*clientdomain.Client, int, error) {
	if limit <= 0 {
		limit = 10
	}

	clients, err := uc.clients.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.clients.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// DeactivateClientUseCase desativa um cliente
type DeactivateClientUseCase struct {
	clients clientdomain.Repository
}

// NewDeactivateClientUseCase cria uma nova instância do caso de uso
func NewDeactivateClientUseCase(clients clientdomain.Repository) *DeactivateClientUseCase {
	return &DeactivateClientUseCase{clients: clients}
}

// Execute carrega o cliente, aplica a transição e persiste
func (uc *DeactivateClientUseCase) Execute(ctx context.Context, id string) (*clientdomain.Client, error) {
	c, err := uc.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Deactivate()
	if err := uc.clients.Save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// DeleteClientUseCase remove um cliente
type DeleteClientUseCase struct {
	clients clientdomain.Repository
}

// NewDeleteClientUseCase cria uma nova instância do caso de uso
func NewDeleteClientUseCase(clients clientdomain.Repository) *DeleteClientUseCase {
	return &DeleteClientUseCase{clients: clients}
}

// Execute confirma a existência do cliente e o remove
func (uc *DeleteClientUseCase) Execute(ctx context.Context, id string) error {
	if _, err := uc.clients.FindByID(ctx, id); err != nil {
		return err
	}

	return uc.clients.Delete(ctx, id)
}
