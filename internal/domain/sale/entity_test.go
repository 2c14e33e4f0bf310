package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []Item {
	return []Item{
		{ProductID: "prod-1", Quantity: 2},
		{ProductID: "prod-2", Quantity: 1},
	}
}

func TestNewSale(t *testing.T) {
	s, err := NewSale(validItems(), 45.90, "PIX", "client-1")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StatusOpen, s.Status)
	assert.Equal(t, "client-1", s.CustomerID)
	assert.False(t, s.IsCancelled())
	assert.Nil(t, s.CancelledAt)
}

func TestNewSaleWithoutCustomer(t *testing.T) {
	s, err := NewSale(validItems(), 45.90, "DINHEIRO", "")
	require.NoError(t, err)
	assert.Empty(t, s.CustomerID)
}

func TestNewSaleValidation(t *testing.T) {
	_, err := NewSale(nil, 45.90, "PIX", "")
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = NewSale([]Item{{ProductID: "", Quantity: 1}}, 45.90, "PIX", "")
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = NewSale([]Item{{ProductID: "prod-1", Quantity: 0}}, 45.90, "PIX", "")
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = NewSale(validItems(), 0, "PIX", "")
	assert.ErrorIs(t, err, ErrInvalidTotal)

	_, err = NewSale(validItems(), 45.90, "", "")
	assert.ErrorIs(t, err, ErrNoPaymentMethod)
}

func TestCancel(t *testing.T) {
	s, err := NewSale(validItems(), 45.90, "PIX", "")
	require.NoError(t, err)

	require.NoError(t, s.Cancel("cliente desistiu"))
	assert.True(t, s.IsCancelled())
	assert.Equal(t, "cliente desistiu", s.CancelReason)
	require.NotNil(t, s.CancelledAt)
}

func TestCancelIsTerminal(t *testing.T) {
	s, err := NewSale(validItems(), 45.90, "PIX", "")
	require.NoError(t, err)

	require.NoError(t, s.Cancel("motivo original"))
	firstCancelledAt := *s.CancelledAt

	// Segundo cancelamento falha e preserva o motivo original
	assert.ErrorIs(t, s.Cancel("outro motivo"), ErrAlreadyCancelled)
	assert.Equal(t, "motivo original", s.CancelReason)
	assert.Equal(t, firstCancelledAt, *s.CancelledAt)
}
