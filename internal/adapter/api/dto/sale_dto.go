package dto

import (
	"time"

	"github.com/rssarti/PDV-Delivery/internal/domain/sale"
)

// SaleItemRequest representa a requisição de item da venda
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
}

// SaleRequest representa a requisição de venda
type SaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
	Total         float64           `json:"total" binding:"required"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	CustomerID    string            `json:"customer_id"`
}

// ToSaleItems converte os itens da requisição para o domínio
func (r SaleRequest) ToSaleItems() []sale.Item {
	items := make([]sale.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = sale.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return items
}

// CancelSaleRequest representa a requisição de cancelamento de venda
type CancelSaleRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// BulkCancelSalesRequest representa a requisição de cancelamento em lote
type BulkCancelSalesRequest struct {
	SaleIDs []string `json:"sale_ids" binding:"required,min=1"`
	Reason  string   `json:"reason" binding:"required"`
}

// SaleItemResponse representa a resposta de item da venda
type SaleItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Status        sale.Status        `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	CancelledAt   *time.Time         `json:"cancelled_at,omitempty"`
	CancelReason  string             `json:"cancel_reason,omitempty"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleResponse converte uma venda do domínio para DTO
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return &SaleResponse{
		ID:            s.ID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CustomerID:    s.CustomerID,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		CancelledAt:   s.CancelledAt,
		CancelReason:  s.CancelReason,
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTO
func ToSaleListResponse(sales []*sale.Sale, total, page, size int) *SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = *ToSaleResponse(s)
	}

	return &SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
