package client

import (
	"context"
	"errors"

	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
)

// ClientInfo é a projeção mínima de cliente exposta para outros módulos
type ClientInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// QueryService expõe consultas de cliente para outros módulos (vendas)
// sem acoplar esses módulos ao repositório completo de clientes.
type QueryService struct {
	clients clientdomain.Repository
}

// NewQueryService cria uma nova instância do serviço de consulta
func NewQueryService(clients clientdomain.Repository) *QueryService {
	return &QueryService{clients: clients}
}

// FindByID retorna a projeção do cliente, ou nil quando não existe
func (s *QueryService) FindByID(ctx context.Context, id string) (*ClientInfo, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientdomain.ErrClientNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ClientInfo{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		IsActive: c.IsActive(),
	}, nil
}

// FindByEmail retorna a projeção do cliente, ou nil quando não existe
func (s *QueryService) FindByEmail(ctx context.Context, email string) (*ClientInfo, error) {
	c, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, clientdomain.ErrClientNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ClientInfo{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		IsActive: c.IsActive(),
	}, nil
}

// ValidateClientExists verifica se o cliente existe
func (s *QueryService) ValidateClientExists(ctx context.Context, id string) (bool, error) {
	_, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientdomain.ErrClientNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsClientActive verifica se o cliente existe e está ativo
func (s *QueryService) IsClientActive(ctx context.Context, id string) (bool, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientdomain.ErrClientNotFound) {
			return false, nil
		}
		return false, err
	}
	return c.IsActive(), nil
}
