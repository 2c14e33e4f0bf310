package client

import (
	"context"
	"errors"

	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
)

// Erros de duplicidade na criação de clientes
var (
	ErrEmailAlreadyExists = errors.New("Client with this email already exists")
	ErrCPFAlreadyExists   = errors.New("Client with this CPF already exists")
	ErrCNPJAlreadyExists  = errors.New("Client with this CNPJ already exists")
)

// AddressInput reúne os campos de endereço recebidos nas requisições
type AddressInput struct {
	Street       string
	Number       string
	Neighborhood string
	Complement   string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64
}

// CreateClientRequest reúne os dados de entrada para criação de um cliente
type CreateClientRequest struct {
	Name    string
	Email   string
	Phone   string
	Address AddressInput
	CPF     string
	CNPJ    string
}

// CreateClientUseCase cria clientes garantindo unicidade de email e documento
type CreateClientUseCase struct {
	clients clientdomain.Repository
}

// NewCreateClientUseCase cria uma nova instância do caso de uso
func NewCreateClientUseCase(clients clientdomain.Repository) *CreateClientUseCase {
	return &CreateClientUseCase{clients: clients}
}

// Execute valida unicidade, constrói o cliente e persiste
func (uc *CreateClientUseCase) Execute(ctx context.Context, req CreateClientRequest) (*clientdomain.Client, error) {
	existing, err := uc.clients.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, clientdomain.ErrClientNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if req.CPF != "" {
		existing, err := uc.clients.FindByDocument(ctx, req.CPF)
		if err != nil && !errors.Is(err, clientdomain.ErrClientNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrCPFAlreadyExists
		}
	}

	if req.CNPJ != "" {
		existing, err := uc.clients.FindByDocument(ctx, req.CNPJ)
		if err != nil && !errors.Is(err, clientdomain.ErrClientNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrCNPJAlreadyExists
		}
	}

	address, err := clientdomain.NewAddress(
		req.Address.Street,
		req.Address.Number,
		req.Address.Neighborhood,
		req.Address.Complement,
		req.Address.ZipCode,
		req.Address.Latitude,
		req.Address.Longitude,
	)
	if err != nil {
		return nil, err
	}

	c, err := clientdomain.NewClient(req.Name, req.Email, req.Phone, address, req.CPF, req.CNPJ)
	if err != nil {
		return nil, err
	}

	if err := uc.clients.Save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
