package client

import (
	"context"

	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
)

// CreateAdditionalAddressRequest reúne os dados de entrada para salvar um
// endereço adicional
type CreateAdditionalAddressRequest struct {
	ClientID string
	Address  AddressInput
	Label    string
}

// CreateAdditionalAddressUseCase salva um endereço como adicional do cliente
type CreateAdditionalAddressUseCase struct {
	service *clientdomain.AddressManagementService
}

// NewCreateAdditionalAddressUseCase cria uma nova instância do caso de uso
func NewCreateAdditionalAddressUseCase(service *clientdomain.AddressManagementService) *CreateAdditionalAddressUseCase {
	return &CreateAdditionalAddressUseCase{service: service}
}

// Execute valida o endereço e delega ao serviço de domínio
func (uc *CreateAdditionalAddressUseCase) Execute(ctx context.Context, req CreateAdditionalAddressRequest) (*clientdomain.AdditionalAddress, error) {
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

	return uc.service.SaveAddressAsAdditional(ctx, req.ClientID, address, req.Label)
}

// ListClientAddressesUseCase lista o endereço principal e os adicionais
type ListClientAddressesUseCase struct {
	service *clientdomain.AddressManagementService
}

// NewListClientAddressesUseCase cria uma nova instância do caso de uso
func NewListClientAddressesUseCase(service *clientdomain.AddressManagementService) *ListClientAddressesUseCase {
	return &ListClientAddressesUseCase{service: service}
}

// Execute retorna os endereços do cliente
func (uc *ListClientAddressesUseCase) Execute(ctx context.Context, clientID string) (*clientdomain.ClientAddresses, error) {
	return uc.service.GetClientAddresses(ctx, clientID)
}

// SelectAddressForOrderUseCase promove um endereço adicional a principal
// registrando o uso
type SelectAddressForOrderUseCase struct {
	service *clientdomain.AddressManagementService
}

// NewSelectAddressForOrderUseCase cria uma nova instância do caso de uso
func NewSelectAddressForOrderUseCase(service *clientdomain.AddressManagementService) *SelectAddressForOrderUseCase {
	return &SelectAddressForOrderUseCase{service: service}
}

// Execute delega a seleção ao serviço de domínio
func (uc *SelectAddressForOrderUseCase) Execute(ctx context.Context, clientID, addressID string) (*clientdomain.AdditionalAddress, error) {
	return uc.service.SelectAddressForOrder(ctx, clientID, addressID)
}

// ToggleAddressFavoriteUseCase alterna a marcação de favorito
type ToggleAddressFavoriteUseCase struct {
	service *clientdomain.AddressManagementService
}

// NewToggleAddressFavoriteUseCase cria uma nova instância do caso de uso
func NewToggleAddressFavoriteUseCase(service *clientdomain.AddressManagementService) *ToggleAddressFavoriteUseCase {
	return &ToggleAddressFavoriteUseCase{service: service}
}

// Execute delega ao serviço de domínio
func (uc *ToggleAddressFavoriteUseCase) Execute(ctx context.Context, addressID string) (*clientdomain.AdditionalAddress, error) {
	return uc.service.ToggleAddressFavorite(ctx, addressID)
}

// DeleteAdditionalAddressUseCase remove um endereço adicional
type DeleteAdditionalAddressUseCase struct {
	service *clientdomain.AddressManagementService
}

// NewDeleteAdditionalAddressUseCase cria uma nova instância do caso de uso
func NewDeleteAdditionalAddressUseCase(service *clientdomain.AddressManagementService) *DeleteAdditionalAddressUseCase {
	return &DeleteAdditionalAddressUseCase{service: service}
}

// Execute delega ao serviço de domínio
func (uc *DeleteAdditionalAddressUseCase) Execute(ctx context.Context, addressID string) error {
	return uc.service.DeleteAdditionalAddress(ctx, addressID)
}
