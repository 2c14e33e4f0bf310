package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Erros de validação e de ciclo de vida da venda
var (
	ErrNoItems          = errors.New("Sale must have at least one item")
	ErrInvalidItem      = errors.New("All items must have a valid product ID and positive quantity")
	ErrInvalidTotal     = errors.New("Sale total must be greater than zero")
	ErrNoPaymentMethod  = errors.New("Payment method is required")
	ErrAlreadyCancelled = errors.New("Sale is already cancelled")
)

// Status representa o estado da venda
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusCancelled Status = "CANCELLED" // Estado terminal
)

// Item é uma linha da venda
type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// Sale representa uma venda com seus itens. O único ciclo de vida possível
// é OPEN → CANCELLED; uma venda cancelada não muda mais de estado.
type Sale struct {
	ID            string     `json:"id"`
	Items         []Item     `json:"items"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CancelReason  string     `json:"cancel_reason,omitempty"`
}

// NewSale cria uma nova venda aberta, validando itens, total e forma de
// pagamento. A elegibilidade do cliente é verificada pelo caso de uso,
// não aqui, por exigir consulta a outro agregado.
func NewSale(items []Item, total float64, paymentMethod, customerID string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, ErrInvalidItem
		}
	}
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if paymentMethod == "" {
		return nil, ErrNoPaymentMethod
	}

	return &Sale{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         total,
		PaymentMethod: paymentMethod,
		CustomerID:    customerID,
		Status:        StatusOpen,
		CreatedAt:     time.Now(),
	}, nil
}

// IsCancelled verifica se a venda está cancelada
func (s *Sale) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// Cancel cancela a venda com o motivo informado. Falha se a venda já
// estiver cancelada.
func (s *Sale) Cancel(reason string) error {
	if s.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	now := time.Now()
	s.Status = StatusCancelled
	s.CancelReason = reason
	s.CancelledAt = &now

	return nil
}
