package client

import (
	"context"
	"errors"
)

// Erros de coordenação entre cliente e endereços
var (
	ErrClientNotFound       = errors.New("Client not found")
	ErrAddressNotFound      = errors.New("Address not found")
	ErrAddressIsPrimary     = errors.New("This address is already the primary address")
	ErrAddressAlreadyExists = errors.New("This address already exists in additional addresses")
)

// ClientAddresses agrupa o endereço principal e os adicionais de um cliente
type ClientAddresses struct {
	Primary    Address
	Additional []*AdditionalAddress
}

// AddressManagementService coordena o endereço principal do cliente e seus
// endereços adicionais: salvamento, seleção para pedido, favoritos e listagem.
type AddressManagementService struct {
	clients   Repository
	addresses AdditionalAddressRepository
}

// NewAddressManagementService cria uma nova instância do serviço
func NewAddressManagementService(clients Repository, addresses AdditionalAddressRepository) *AddressManagementService {
	return &AddressManagementService{
		clients:   clients,
		addresses: addresses,
	}
}

// SaveAddressAsAdditional salva um endereço como adicional do cliente.
// Rejeita endereços estruturalmente iguais ao principal ou a um adicional
// já cadastrado.
func (s *AddressManagementService) SaveAddressAsAdditional(ctx context.Context, clientID string, address Address, label string) (*AdditionalAddress, error) {
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if address.Equals(c.Address) {
		return nil, ErrAddressIsPrimary
	}

	existing, err := s.addresses.FindByClientAndAddress(ctx, clientID, address)
	if err != nil && !errors.Is(err, ErrAddressNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAddressAlreadyExists
	}

	additional := NewAdditionalAddress(clientID, address, label)
	if err := s.addresses.Save(ctx, additional); err != nil {
		return nil, err
	}

	return additional, nil
}

// SelectAddressForOrder marca o endereço adicional como usado e o promove
// a endereço principal do cliente, substituindo o atual.
func (s *AddressManagementService) SelectAddressForOrder(ctx context.Context, clientID, addressID string) (*AdditionalAddress, error) {
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	selected, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	selected.MarkAsUsed()
	if err := s.addresses.Save(ctx, selected); err != nil {
		return nil, err
	}

	c.UpdatePrimaryAddress(selected.Address)
	if err := s.clients.Save(ctx, c); err != nil {
		return nil, err
	}

	return selected, nil
}

// ToggleAddressFavorite alterna a marcação de favorito de um endereço adicional
func (s *AddressManagementService) ToggleAddressFavorite(ctx context.Context, addressID string) (*AdditionalAddress, error) {
	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	address.ToggleFavorite()
	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// GetClientAddresses retorna o endereço principal e os adicionais do cliente
func (s *AddressManagementService) GetClientAddresses(ctx context.Context, clientID string) (*ClientAddresses, error) {
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	additional, err := s.addresses.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &ClientAddresses{
		Primary:    c.Address,
		Additional: additional,
	}, nil
}

// DeleteAdditionalAddress remove um endereço adicional do cliente
func (s *AddressManagementService) DeleteAdditionalAddress(ctx context.Context, addressID string) error {
	if _, err := s.addresses.FindByID(ctx, addressID); err != nil {
		return err
	}

	return s.addresses.Delete(ctx, addressID)
}
