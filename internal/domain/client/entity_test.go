package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) Address {
	t.Helper()
	addr, err := NewAddress("Rua das Flores", "123", "Centro", "", "01310100", nil, nil)
	require.NoError(t, err)
	return addr
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("João Silva", "JOAO@Example.com", "(11) 99999-8888", validAddress(t), "529.982.247-25", "")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "João Silva", c.Name)
	assert.Equal(t, "joao@example.com", c.Email, "email deve ser normalizado para minúsculas")
	assert.Equal(t, "11999998888", c.Phone, "telefone deve ser reduzido a dígitos")
	assert.Equal(t, "52998224725", c.CPF)
	assert.Equal(t, StatusActive, c.Status)
	assert.True(t, c.IsActive())
}

func TestNewClientValidation(t *testing.T) {
	addr := validAddress(t)

	_, err := NewClient("J", "joao@example.com", "", addr, "", "")
	assert.ErrorIs(t, err, ErrNameTooShort)

	_, err = NewClient("João Silva", "not-an-email", "", addr, "", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewClient("João Silva", "joao@example.com", "", addr, "123", "")
	assert.ErrorIs(t, err, ErrInvalidCPF)

	_, err = NewClient("Empresa LTDA", "contato@example.com", "", addr, "", "12345")
	assert.ErrorIs(t, err, ErrInvalidCNPJ)

	_, err = NewClient("João Silva", "joao@example.com", "", addr, "52998224725", "11222333000181")
	assert.ErrorIs(t, err, ErrBothDocuments)
}

func TestClientDocument(t *testing.T) {
	addr := validAddress(t)

	withCPF, err := NewClient("João Silva", "joao@example.com", "", addr, "52998224725", "")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", withCPF.Document())

	withCNPJ, err := NewClient("Empresa LTDA", "contato@example.com", "", addr, "", "11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", withCNPJ.Document())

	without, err := NewClient("Maria Souza", "maria@example.com", "", addr, "", "")
	require.NoError(t, err)
	assert.Empty(t, without.Document())
}

func TestClientStatusTransitions(t *testing.T) {
	c, err := NewClient("João Silva", "joao@example.com", "", validAddress(t), "", "")
	require.NoError(t, err)

	c.Deactivate()
	assert.Equal(t, StatusInactive, c.Status)
	assert.False(t, c.IsActive())

	c.Suspend()
	assert.Equal(t, StatusSuspended, c.Status)

	c.Reactivate()
	assert.Equal(t, StatusActive, c.Status)
}

func TestClientUpdateInfo(t *testing.T) {
	c, err := NewClient("João Silva", "joao@example.com", "11999998888", validAddress(t), "", "")
	require.NoError(t, err)

	// Campos vazios mantêm o valor atual
	require.NoError(t, c.UpdateInfo("", "", ""))
	assert.Equal(t, "João Silva", c.Name)
	assert.Equal(t, "joao@example.com", c.Email)

	require.NoError(t, c.UpdateInfo("João Pedro Silva", "JP@Example.com", "(11) 98888-7777"))
	assert.Equal(t, "João Pedro Silva", c.Name)
	assert.Equal(t, "jp@example.com", c.Email)
	assert.Equal(t, "11988887777", c.Phone)

	assert.ErrorIs(t, c.UpdateInfo("X", "", ""), ErrNameTooShort)
	assert.ErrorIs(t, c.UpdateInfo("", "invalid", ""), ErrInvalidEmail)
}

func TestAdditionalAddressUsage(t *testing.T) {
	addr := validAddress(t)
	additional := NewAdditionalAddress("client-1", addr, "Trabalho")

	assert.Zero(t, additional.UsedCount)
	assert.Nil(t, additional.LastUsedAt)
	assert.False(t, additional.IsFavorite)

	additional.MarkAsUsed()
	additional.MarkAsUsed()
	assert.Equal(t, 2, additional.UsedCount)
	require.NotNil(t, additional.LastUsedAt)

	additional.ToggleFavorite()
	assert.True(t, additional.IsFavorite)
	additional.ToggleFavorite()
	assert.False(t, additional.IsFavorite)
}
