package client

import (
	"time"

	"github.com/google/uuid"
)

// AdditionalAddress é um endereço alternativo salvo pelo cliente, com
// rótulo, marcação de favorito e contagem de uso para ordenação.
type AdditionalAddress struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	Address    Address    `json:"address"`
	Label      string     `json:"label"` // Ex.: "Casa", "Trabalho"
	IsFavorite bool       `json:"is_favorite"`
	UsedCount  int        `json:"used_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewAdditionalAddress cria um endereço adicional para o cliente.
// O endereço já chega validado pelo objeto de valor Address.
func NewAdditionalAddress(clientID string, address Address, label string) *AdditionalAddress {
	now := time.Now()
	return &AdditionalAddress{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Address:   address,
		Label:     label,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkAsUsed incrementa o contador de uso e registra o momento
func (a *AdditionalAddress) MarkAsUsed() {
	a.UsedCount++
	now := time.Now()
	a.LastUsedAt = &now
	a.UpdatedAt = now
}

// ToggleFavorite alterna a marcação de favorito
func (a *AdditionalAddress) ToggleFavorite() {
	a.IsFavorite = !a.IsFavorite
	a.UpdatedAt = time.Now()
}
