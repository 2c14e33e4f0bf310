package sale

import (
	"context"
	"errors"

	saledomain "github.com/rssarti/PDV-Delivery/internal/domain/sale"
)

// Erros de entrada do cancelamento
var (
	ErrMissingSaleID = errors.New("Sale ID is required")
	ErrMissingReason = errors.New("Cancellation reason is required")
)

// CancelSaleUseCase cancela uma venda aberta
type CancelSaleUseCase struct {
	sales saledomain.Repository
}

// NewCancelSaleUseCase cria uma nova instância do caso de uso
func NewCancelSaleUseCase(sales saledomain.Repository) *CancelSaleUseCase {
	return &CancelSaleUseCase{sales: sales}
}

// Execute carrega a venda, aplica a transição de cancelamento e persiste.
// O cancelamento de uma venda já cancelada falha sem alterar estado.
func (uc *CancelSaleUseCase) Execute(ctx context.Context, id, reason string) error {
	if id == "" {
		return ErrMissingSaleID
	}
	if reason == "" {
		return ErrMissingReason
	}

	s, err := uc.sales.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Cancel(reason); err != nil {
		return err
	}

	return uc.sales.Cancel(ctx, id, reason)
}

// BulkCancelSalesUseCase cancela um conjunto de vendas com o mesmo motivo
type BulkCancelSalesUseCase struct {
	sales saledomain.Repository
}

// NewBulkCancelSalesUseCase cria uma nova instância do caso de uso
func NewBulkCancelSalesUseCase(sales saledomain.Repository) *BulkCancelSalesUseCase {
	return &BulkCancelSalesUseCase{sales: sales}
}

// Execute cancela as vendas informadas
func (uc *BulkCancelSalesUseCase) Execute(ctx context.Context, ids []string, reason string) error {
	if len(ids) == 0 {
		return ErrMissingSaleID
	}
	if reason == "" {
		return ErrMissingReason
	}

	return uc.sales.BulkCancel(ctx, ids, reason)
}
