package sale

import (
	"context"
	"errors"

	saledomain "github.com/rssarti/PDV-Delivery/internal/domain/sale"
)

// Erros de elegibilidade do cliente na criação da venda
var (
	ErrCustomerNotFound = errors.New("Customer not found")
	ErrCustomerInactive = errors.New("Customer is not active")
)

// ClientLookup é o colaborador usado para validar a elegibilidade do
// cliente sem acoplar o módulo de vendas ao repositório de clientes.
type ClientLookup interface {
	ValidateClientExists(ctx context.Context, id string) (bool, error)
	IsClientActive(ctx context.Context, id string) (bool, error)
}

// CreateSaleRequest reúne os dados de entrada para criação de uma venda
type CreateSaleRequest struct {
	Items         []saledomain.Item
	Total         float64
	PaymentMethod string
	CustomerID    string
}

// CreateSaleUseCase cria uma venda aberta. Quando um cliente é informado,
// confirma antes que ele exista e esteja ativo.
type CreateSaleUseCase struct {
	sales   saledomain.Repository
	clients ClientLookup
}

// NewCreateSaleUseCase cria uma nova instância do caso de uso
func NewCreateSaleUseCase(sales saledomain.Repository, clients ClientLookup) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		sales:   sales,
		clients: clients,
	}
}

// Execute valida a elegibilidade do cliente (quando informado), constrói a
// venda e a persiste.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req CreateSaleRequest) (*saledomain.Sale, error) {
	if req.CustomerID != "" {
		exists, err := uc.clients.ValidateClientExists(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCustomerNotFound
		}

		active, err := uc.clients.IsClientActive(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, ErrCustomerInactive
		}
	}

	s, err := saledomain.NewSale(req.Items, req.Total, req.PaymentMethod, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := uc.sales.Save(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}
