package client

import (
	"errors"
	"regexp"
	"strings"
)

// Erros de validação de endereço
var (
	ErrAddressTooShort      = errors.New("Address must have at least 3 characters")
	ErrAddressNumberMissing = errors.New("Address number is required")
	ErrNeighborhoodTooShort = errors.New("Neighborhood must have at least 2 characters")
	ErrInvalidZipCode       = errors.New("ZIP code must have 8 digits")
	ErrInvalidLatitude      = errors.New("Latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("Longitude must be between -180 and 180")
)

var nonDigits = regexp.MustCompile(`\D`)

// Address é um objeto de valor imutável que representa um endereço completo.
// A igualdade é estrutural: logradouro, número, bairro e CEP.
type Address struct {
	Street       string   `json:"street"`        // Logradouro
	Number       string   `json:"number"`        // Número
	Neighborhood string   `json:"neighborhood"`  // Bairro
	Complement   string   `json:"complement"`    // Complemento (opcional)
	ZipCode      string   `json:"zip_code"`      // CEP (8 dígitos)
	Latitude     *float64 `json:"latitude"`      // Latitude (opcional)
	Longitude    *float64 `json:"longitude"`     // Longitude (opcional)
}

// NewAddress valida e normaliza os campos, retornando o endereço pronto
// para uso. O CEP é reduzido a dígitos e os textos são aparados.
func NewAddress(street, number, neighborhood, complement, zipCode string, latitude, longitude *float64) (Address, error) {
	street = strings.TrimSpace(street)
	number = strings.TrimSpace(number)
	neighborhood = strings.TrimSpace(neighborhood)
	complement = strings.TrimSpace(complement)
	zipCode = nonDigits.ReplaceAllString(zipCode, "")

	if len(street) < 3 {
		return Address{}, ErrAddressTooShort
	}
	if number == "" {
		return Address{}, ErrAddressNumberMissing
	}
	if len(neighborhood) < 2 {
		return Address{}, ErrNeighborhoodTooShort
	}
	if len(zipCode) != 8 {
		return Address{}, ErrInvalidZipCode
	}
	if latitude != nil && (*latitude < -90 || *latitude > 90) {
		return Address{}, ErrInvalidLatitude
	}
	if longitude != nil && (*longitude < -180 || *longitude > 180) {
		return Address{}, ErrInvalidLongitude
	}

	return Address{
		Street:       street,
		Number:       number,
		Neighborhood: neighborhood,
		Complement:   complement,
		ZipCode:      zipCode,
		Latitude:     latitude,
		Longitude:    longitude,
	}, nil
}

// Equals compara dois endereços pela identidade estrutural
// (logradouro, número, bairro e CEP).
func (a Address) Equals(other Address) bool {
	return a.Street == other.Street &&
		a.Number == other.Number &&
		a.Neighborhood == other.Neighborhood &&
		a.ZipCode == other.ZipCode
}

// FullAddress retorna o endereço em linha única para exibição
func (a Address) FullAddress() string {
	complement := ""
	if a.Complement != "" {
		complement = ", " + a.Complement
	}
	return a.Street + ", " + a.Number + complement + ", " + a.Neighborhood
}

// FormattedZipCode retorna o CEP no formato 00000-000
func (a Address) FormattedZipCode() string {
	if len(a.ZipCode) != 8 {
		return a.ZipCode
	}
	return a.ZipCode[:5] + "-" + a.ZipCode[5:]
}

// HasCoordinates indica se o endereço possui latitude e longitude
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
