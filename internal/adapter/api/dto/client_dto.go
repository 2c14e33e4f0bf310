package dto

import (
	"time"

	"github.com/rssarti/PDV-Delivery/internal/domain/client"
	clientusecase "github.com/rssarti/PDV-Delivery/internal/usecase/client"
)

// AddressRequest representa a requisição de endereço
type AddressRequest struct {
	Street       string   `json:"street" binding:"required"`
	Number       string   `json:"number"`
	Neighborhood string   `json:"neighborhood"`
	Complement   string   `json:"complement"`
	ZipCode      string   `json:"zip_code" binding:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// ToAddressInput converte a requisição para a entrada do caso de uso
func (r AddressRequest) ToAddressInput() clientusecase.AddressInput {
	return clientusecase.AddressInput{
		Street:       r.Street,
		Number:       r.Number,
		Neighborhood: r.Neighborhood,
		Complement:   r.Complement,
		ZipCode:      r.ZipCode,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
}

// ClientRequest representa a requisição de cliente
type ClientRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"required"`
	Phone   string         `json:"phone" binding:"required"`
	Address AddressRequest `json:"address" binding:"required"`
	CPF     string         `json:"cpf"`
	CNPJ    string         `json:"cnpj"`
}

// AddressResponse representa a resposta de endereço
type AddressResponse struct {
	Street       string   `json:"street"`
	Number       string   `json:"number"`
	Neighborhood string   `json:"neighborhood"`
	Complement   string   `json:"complement,omitempty"`
	ZipCode      string   `json:"zip_code"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	FullAddress  string   `json:"full_address"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   AddressResponse `json:"address"`
	CPF       string          `json:"cpf,omitempty"`
	CNPJ      string          `json:"cnpj,omitempty"`
	Status    client.Status   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ClientListResponse representa a resposta de lista de clientes
type ClientListResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// AdditionalAddressRequest representa a requisição de endereço adicional
type AdditionalAddressRequest struct {
	Address AddressRequest `json:"address" binding:"required"`
	Label   string         `json:"label"`
}

// AdditionalAddressResponse representa a resposta de endereço adicional
type AdditionalAddressResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	Address    AddressResponse `json:"address"`
	Label      string          `json:"label,omitempty"`
	IsFavorite bool            `json:"is_favorite"`
	UsedCount  int             `json:"used_count"`
	LastUsedAt *time.Time      `json:"last_used_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ClientAddressesResponse representa a resposta de endereços do cliente
type ClientAddressesResponse struct {
	Primary    AddressResponse             `json:"primary"`
	Additional []AdditionalAddressResponse `json:"additional"`
}

// ToAddressResponse converte um endereço do domínio para DTO
func ToAddressResponse(a client.Address) AddressResponse {
	return AddressResponse{
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		Complement:   a.Complement,
		ZipCode:      a.ZipCode,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		FullAddress:  a.FullAddress(),
	}
}

// ToClientResponse converte um cliente do domínio para DTO
func ToClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   ToAddressResponse(c.Address),
		CPF:       c.CPF,
		CNPJ:      c.CNPJ,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes do domínio para DTO
func ToClientListResponse(clients []*client.Client, total, page, size int) *ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i, c := range clients {
		items[i] = *ToClientResponse(c)
	}

	return &ClientListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToAdditionalAddressResponse converte um endereço adicional do domínio para DTO
func ToAdditionalAddressResponse(a *client.AdditionalAddress) *AdditionalAddressResponse {
	return &AdditionalAddressResponse{
		ID:         a.ID,
		ClientID:   a.ClientID,
		Address:    ToAddressResponse(a.Address),
		Label:      a.Label,
		IsFavorite: a.IsFavorite,
		UsedCount:  a.UsedCount,
		LastUsedAt: a.LastUsedAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToClientAddressesResponse converte os endereços do cliente para DTO
func ToClientAddressesResponse(addresses *client.ClientAddresses) *ClientAddressesResponse {
	additional := make([]AdditionalAddressResponse, len(addresses.Additional))
	for i, a := range addresses.Additional {
		additional[i] = *ToAdditionalAddressResponse(a)
	}

	return &ClientAddressesResponse{
		Primary:    ToAddressResponse(addresses.Primary),
		Additional: additional,
	}
}
