package client

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação do cliente
var (
	ErrNameTooShort    = errors.New("Client name must have at least 2 characters")
	ErrInvalidEmail    = errors.New("Valid email is required")
	ErrInvalidCPF      = errors.New("CPF must have 11 digits")
	ErrInvalidCNPJ     = errors.New("CNPJ must have 14 digits")
	ErrBothDocuments   = errors.New("Client cannot have both CPF and CNPJ")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Status representa o estado do cliente
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// Client representa um cliente com seu endereço principal
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"` // Endereço principal
	CPF       string    `json:"cpf,omitempty"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewClient cria um novo cliente já validado e normalizado.
// CPF e CNPJ são opcionais, mas mutuamente exclusivos; quando informados
// são reduzidos a dígitos e precisam ter 11 e 14 dígitos respectivamente.
func NewClient(name, email, phone string, address Address, cpf, cnpj string) (*Client, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, ErrNameTooShort
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	phone = nonDigits.ReplaceAllString(phone, "")

	cpf = nonDigits.ReplaceAllString(cpf, "")
	cnpj = nonDigits.ReplaceAllString(cnpj, "")
	if cpf != "" && cnpj != "" {
		return nil, ErrBothDocuments
	}
	if cpf != "" && len(cpf) != 11 {
		return nil, ErrInvalidCPF
	}
	if cnpj != "" && len(cnpj) != 14 {
		return nil, ErrInvalidCNPJ
	}

	now := time.Now()
	return &Client{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CPF:       cpf,
		CNPJ:      cnpj,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Document retorna o documento fiscal do cliente (CPF ou CNPJ), se houver
func (c *Client) Document() string {
	if c.CPF != "" {
		return c.CPF
	}
	return c.CNPJ
}

// IsActive verifica se o cliente está ativo
func (c *Client) IsActive() bool {
	return c.Status == StatusActive
}

// Deactivate desativa o cliente
func (c *Client) Deactivate() {
	c.Status = StatusInactive
	c.UpdatedAt = time.Now()
}

// Suspend suspende o cliente
func (c *Client) Suspend() {
	c.Status = StatusSuspended
	c.UpdatedAt = time.Now()
}

// Reactivate reativa o cliente
func (c *Client) Reactivate() {
	c.Status = StatusActive
	c.UpdatedAt = time.Now()
}

// UpdateInfo atualiza nome, email e telefone, revalidando cada campo
// informado. Campos vazios mantêm o valor atual.
func (c *Client) UpdateInfo(name, email, phone string) error {
	if name != "" {
		name = strings.TrimSpace(name)
		if len(name) < 2 {
			return ErrNameTooShort
		}
		c.Name = name
	}

	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if !emailRegex.MatchString(email) {
			return ErrInvalidEmail
		}
		c.Email = email
	}

	if phone != "" {
		c.Phone = nonDigits.ReplaceAllString(phone, "")
	}

	c.UpdatedAt = time.Now()
	return nil
}

// UpdatePrimaryAddress substitui o endereço principal do cliente
func (c *Client) UpdatePrimaryAddress(address Address) {
	c.Address = address
	c.UpdatedAt = time.Now()
}
