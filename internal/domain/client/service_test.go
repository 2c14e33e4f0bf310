package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients map[string]*Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*Client)}
}

func (r *fakeClientRepo) Save(ctx context.Context, c *Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id string) (*Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) FindByEmail(ctx context.Context, email string) (*Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, ErrClientNotFound
}

func (r *fakeClientRepo) FindByDocument(ctx context.Context, document string) (*Client, error) {
	for _, c := range r.clients {
		if c.Document() == document {
			return c, nil
		}
	}
	return nil, ErrClientNotFound
}

func (r *fakeClientRepo) List(ctx context.Context, status Status, limit, offset int) ([]*Client, error) {
	var out []*Client
	for _, c := range r.clients {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Count(ctx context.Context, status Status) (int, error) {
	list, _ := r.List(ctx, status, 0, 0)
	return len(list), nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeAddressRepo struct {
	addresses map[string]*AdditionalAddress
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[string]*AdditionalAddress)}
}

func (r *fakeAddressRepo) Save(ctx context.Context, a *AdditionalAddress) error {
	r.addresses[a.ID] = a
	return nil
}

func (r *fakeAddressRepo) FindByID(ctx context.Context, id string) (*AdditionalAddress, error) {
	a, ok := r.addresses[id]
	if !ok {
		return nil, ErrAddressNotFound
	}
	return a, nil
}

func (r *fakeAddressRepo) FindByClient(ctx context.Context, clientID string) ([]*AdditionalAddress, error) {
	var out []*AdditionalAddress
	for _, a := range r.addresses {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) FindByClientAndAddress(ctx context.Context, clientID string, address Address) (*AdditionalAddress, error) {
	for _, a := range r.addresses {
		if a.ClientID == clientID && a.Address.Equals(address) {
			return a, nil
		}
	}
	return nil, ErrAddressNotFound
}

func (r *fakeAddressRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.addresses[id]; !ok {
		return ErrAddressNotFound
	}
	delete(r.addresses, id)
	return nil
}

func newTestService(t *testing.T) (*AddressManagementService, *fakeClientRepo, *fakeAddressRepo, *Client) {
	t.Helper()

	clients := newFakeClientRepo()
	addresses := newFakeAddressRepo()
	service := NewAddressManagementService(clients, addresses)

	c, err := NewClient("João Silva", "joao@example.com", "", validAddress(t), "", "")
	require.NoError(t, err)
	require.NoError(t, clients.Save(context.Background(), c))

	return service, clients, addresses, c
}

func TestSaveAddressAsAdditional(t *testing.T) {
	service, _, addresses, c := newTestService(t)
	ctx := context.Background()

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)

	saved, err := service.SaveAddressAsAdditional(ctx, c.ID, addr, "Trabalho")
	require.NoError(t, err)
	assert.Equal(t, c.ID, saved.ClientID)
	assert.Equal(t, "Trabalho", saved.Label)
	assert.Len(t, addresses.addresses, 1)
}

func TestSaveAddressAsAdditionalRejectsPrimary(t *testing.T) {
	service, _, _, c := newTestService(t)

	// Endereço estruturalmente igual ao principal, complemento diferente
	same, err := NewAddress("Rua das Flores", "123", "Centro", "Fundos", "01310100", nil, nil)
	require.NoError(t, err)

	_, err = service.SaveAddressAsAdditional(context.Background(), c.ID, same, "Casa")
	assert.ErrorIs(t, err, ErrAddressIsPrimary)
}

func TestSaveAddressAsAdditionalRejectsDuplicate(t *testing.T) {
	service, _, _, c := newTestService(t)
	ctx := context.Background()

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)

	_, err = service.SaveAddressAsAdditional(ctx, c.ID, addr, "Trabalho")
	require.NoError(t, err)

	_, err = service.SaveAddressAsAdditional(ctx, c.ID, addr, "Escritório")
	assert.ErrorIs(t, err, ErrAddressAlreadyExists)
}

func TestSaveAddressAsAdditionalClientNotFound(t *testing.T) {
	service, _, _, _ := newTestService(t)

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)

	_, err = service.SaveAddressAsAdditional(context.Background(), "missing", addr, "")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestSelectAddressForOrder(t *testing.T) {
	service, clients, _, c := newTestService(t)
	ctx := context.Background()

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)
	saved, err := service.SaveAddressAsAdditional(ctx, c.ID, addr, "Trabalho")
	require.NoError(t, err)

	selected, err := service.SelectAddressForOrder(ctx, c.ID, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, selected.UsedCount)
	require.NotNil(t, selected.LastUsedAt)

	// O endereço selecionado vira o principal do cliente
	updated, err := clients.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, updated.Address.Equals(addr))
}

func TestToggleAddressFavorite(t *testing.T) {
	service, _, _, c := newTestService(t)
	ctx := context.Background()

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)
	saved, err := service.SaveAddressAsAdditional(ctx, c.ID, addr, "Trabalho")
	require.NoError(t, err)

	toggled, err := service.ToggleAddressFavorite(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = service.ToggleAddressFavorite(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)

	_, err = service.ToggleAddressFavorite(ctx, "missing")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestGetClientAddresses(t *testing.T) {
	service, _, _, c := newTestService(t)
	ctx := context.Background()

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)
	_, err = service.SaveAddressAsAdditional(ctx, c.ID, addr, "Trabalho")
	require.NoError(t, err)

	result, err := service.GetClientAddresses(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, result.Primary.Equals(c.Address))
	assert.Len(t, result.Additional, 1)
}

func TestDeleteAdditionalAddress(t *testing.T) {
	service, _, addresses, c := newTestService(t)
	ctx := context.Background()

	addr, err := NewAddress("Avenida Paulista", "1000", "Bela Vista", "", "01310200", nil, nil)
	require.NoError(t, err)
	saved, err := service.SaveAddressAsAdditional(ctx, c.ID, addr, "Trabalho")
	require.NoError(t, err)

	require.NoError(t, service.DeleteAdditionalAddress(ctx, saved.ID))
	assert.Empty(t, addresses.addresses)

	assert.ErrorIs(t, service.DeleteAdditionalAddress(ctx, saved.ID), ErrAddressNotFound)
}
