package supplier

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação do fornecedor
var (
	ErrEmptyName   = errors.New("nome do fornecedor é obrigatório")
	ErrNameTooLong = errors.New("nome do fornecedor deve ter no máximo 200 caracteres")
	ErrInvalidCNPJ = errors.New("CNPJ inválido")
	ErrInvalidEmail = errors.New("email inválido")
)

var (
	// CNPJ formatado: 00.000.000/0000-00
	cnpjRegex  = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Supplier representa um fornecedor de insumos
type Supplier struct {
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

// NewSupplier cria um novo fornecedor validado. CNPJ e email são opcionais,
// mas quando informados precisam estar em formato válido.
func NewSupplier(name, cnpj, email, phone, address string) (*Supplier, error) {
	now := time.Now()
	s := &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		CNPJ:      cnpj,
		Email:     email,
		Phone:     phone,
		Address:   address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Supplier) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Name) > 200 {
		return ErrNameTooLong
	}
	if s.CNPJ != "" && !cnpjRegex.MatchString(s.CNPJ) {
		return ErrInvalidCNPJ
	}
	if s.Email != "" && !emailRegex.MatchString(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// UpdateContactInfo atualiza email, telefone e endereço, revalidando
func (s *Supplier) UpdateContactInfo(email, phone, address string) error {
	old := s.Email
	s.Email = email
	if err := s.validate(); err != nil {
		s.Email = old
		return err
	}
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()
	return nil
}

// Activate ativa o fornecedor
func (s *Supplier) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now()
}

// Deactivate desativa o fornecedor
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
}
