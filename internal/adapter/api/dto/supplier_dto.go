package dto

import (
	"time"

	"github.com/rssarti/PDV-Delivery/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	CNPJ    string `json:"cnpj"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items      []SupplierResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToSupplierResponse converte um fornecedor do domínio para DTO
func ToSupplierResponse(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores do domínio para DTO
func ToSupplierListResponse(suppliers []*supplier.Supplier, total, page, size int) *SupplierListResponse {
	items := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		items[i] = *ToSupplierResponse(s)
	}

	return &SupplierListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
