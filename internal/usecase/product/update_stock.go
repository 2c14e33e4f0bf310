package product

import (
	"context"
	"errors"
	"time"

	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
)

// StockOperation é o tipo de movimentação de estoque
type StockOperation string

const (
	OperationAdd    StockOperation = "ADD"
	OperationRemove StockOperation = "REMOVE"
)

// ErrInvalidOperation indica uma operação de estoque desconhecida
var ErrInvalidOperation = errors.New("operação de estoque inválida")

// UpdateStockRequest reúne os dados de uma movimentação de estoque
type UpdateStockRequest struct {
	ProductID      string
	Quantity       float64
	Operation      StockOperation
	BatchNumber    string
	ExpirationDate *time.Time
}

// UpdateStockUseCase aplica uma movimentação de estoque a um produto.
// A validação da quantidade e a derivação do status ficam na entidade.
type UpdateStockUseCase struct {
	products productdomain.Repository
}

// NewUpdateStockUseCase cria uma nova instância do caso de uso
func NewUpdateStockUseCase(products productdomain.Repository) *UpdateStockUseCase {
	return &UpdateStockUseCase{products: products}
}

// Execute carrega o produto, aplica a movimentação e persiste
func (uc *UpdateStockUseCase) Execute(ctx context.Context, req UpdateStockRequest) (*productdomain.Product, error) {
	p, err := uc.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	switch req.Operation {
	case OperationAdd:
		err = p.AddStock(req.Quantity, req.BatchNumber, req.ExpirationDate)
	case OperationRemove:
		err = p.RemoveStock(req.Quantity)
	default:
		err = ErrInvalidOperation
	}
	if err != nil {
		return nil, err
	}

	if err := uc.products.Save(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
