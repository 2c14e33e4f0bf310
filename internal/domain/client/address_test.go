package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	addr, err := NewAddress("Rua das Flores", "123", "Centro", "Apto 45", "01310-100", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Rua das Flores", addr.Street)
	assert.Equal(t, "123", addr.Number)
	assert.Equal(t, "Centro", addr.Neighborhood)
	assert.Equal(t, "Apto 45", addr.Complement)
	assert.Equal(t, "01310100", addr.ZipCode, "CEP deve ser reduzido a dígitos")
}

func TestNewAddressValidation(t *testing.T) {
	tests := []struct {
		name         string
		street       string
		number       string
		neighborhood string
		zipCode      string
		wantErr      error
	}{
		{"logradouro curto", "Ru", "123", "Centro", "01310100", ErrAddressTooShort},
		{"sem número", "Rua das Flores", "", "Centro", "01310100", ErrAddressNumberMissing},
		{"bairro curto", "Rua das Flores", "123", "C", "01310100", ErrNeighborhoodTooShort},
		{"cep inválido", "Rua das Flores", "123", "Centro", "0131", ErrInvalidZipCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddress(tt.street, tt.number, tt.neighborhood, "", tt.zipCode, nil, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAddressCoordinates(t *testing.T) {
	lat := -23.55
	lon := -46.63
	addr, err := NewAddress("Rua das Flores", "123", "Centro", "", "01310100", &lat, &lon)
	require.NoError(t, err)
	assert.True(t, addr.HasCoordinates())

	badLat := 91.0
	_, err = NewAddress("Rua das Flores", "123", "Centro", "", "01310100", &badLat, &lon)
	assert.ErrorIs(t, err, ErrInvalidLatitude)

	badLon := -181.0
	_, err = NewAddress("Rua das Flores", "123", "Centro", "", "01310100", &lat, &badLon)
	assert.ErrorIs(t, err, ErrInvalidLongitude)
}

func TestAddressEquals(t *testing.T) {
	a, err := NewAddress("Rua das Flores", "123", "Centro", "Apto 45", "01310100", nil, nil)
	require.NoError(t, err)

	// Igualdade estrutural ignora complemento e coordenadas
	b, err := NewAddress("Rua das Flores", "123", "Centro", "Casa dos fundos", "01310-100", nil, nil)
	require.NoError(t, err)
	assert.True(t, a.Equals(b))

	c, err := NewAddress("Rua das Flores", "124", "Centro", "", "01310100", nil, nil)
	require.NoError(t, err)
	assert.False(t, a.Equals(c))
}

func TestAddressFormatting(t *testing.T) {
	addr, err := NewAddress("Rua das Flores", "123", "Centro", "Apto 45", "01310100", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Rua das Flores, 123, Apto 45, Centro", addr.FullAddress())
	assert.Equal(t, "01310-100", addr.FormattedZipCode())

	noComplement, err := NewAddress("Rua das Flores", "123", "Centro", "", "01310100", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Rua das Flores, 123, Centro", noComplement.FullAddress())
}
