package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/client"
)

// AdditionalAddressRepository implementa client.AdditionalAddressRepository
type AdditionalAddressRepository struct {
	db *pgxpool.Pool
}

// NewAdditionalAddressRepository cria uma nova instância de AdditionalAddressRepository
func NewAdditionalAddressRepository(db *pgxpool.Pool) client.AdditionalAddressRepository {
	return &AdditionalAddressRepository{db: db}
}

// Save implementa client.AdditionalAddressRepository.Save (upsert pelo ID)
func (r *AdditionalAddressRepository) Save(ctx context.Context, a *client.AdditionalAddress) error {
	address, err := json.Marshal(a.Address)
	if err != nil {
		return fmt.Errorf("erro ao converter endereço para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO additional_addresses (
			id, client_id, address, label, is_favorite, used_count,
			last_used_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			address = EXCLUDED.address, label = EXCLUDED.label,
			is_favorite = EXCLUDED.is_favorite, used_count = EXCLUDED.used_count,
			last_used_at = EXCLUDED.last_used_at, updated_at = EXCLUDED.updated_at`,
		a.ID, a.ClientID, address, a.Label, a.IsFavorite, a.UsedCount,
		a.LastUsedAt, a.CreatedAt, a.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar endereço adicional: %w", err)
	}

	return nil
}

// FindByID implementa client.AdditionalAddressRepository.FindByID
func (r *AdditionalAddressRepository) FindByID(ctx context.Context, id string) (*client.AdditionalAddress, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, client_id, address, label, is_favorite, used_count,
			last_used_at, created_at, updated_at
		FROM additional_addresses WHERE id = $1`, id)

	a, err := scanAdditionalAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrAddressNotFound
		}
		return nil, err
	}

	return a, nil
}

// FindByClient implementa client.AdditionalAddressRepository.FindByClient.
// Endereços usados recentemente vêm primeiro; os nunca usados, por criação
// mais recente.
func (r *AdditionalAddressRepository) FindByClient(ctx context.Context, clientID string) ([]*client.AdditionalAddress, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, address, label, is_favorite, used_count,
			last_used_at, created_at, updated_at
		FROM additional_addresses
		WHERE client_id = $1
		ORDER BY last_used_at DESC NULLS LAST, created_at DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar endereços adicionais: %w", err)
	}
	defer rows.Close()

	addresses := make([]*client.AdditionalAddress, 0)
	for rows.Next() {
		a, err := scanAdditionalAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return addresses, nil
}

// FindByClientAndAddress implementa client.AdditionalAddressRepository.FindByClientAndAddress.
// A igualdade é a estrutural do objeto de valor: logradouro, número, bairro e CEP.
func (r *AdditionalAddressRepository) FindByClientAndAddress(ctx context.Context, clientID string, address client.Address) (*client.AdditionalAddress, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, client_id, address, label, is_favorite, used_count,
			last_used_at, created_at, updated_at
		FROM additional_addresses
		WHERE client_id = $1
			AND address->>'street' = $2
			AND address->>'number' = $3
			AND address->>'neighborhood' = $4
			AND address->>'zip_code' = $5`,
		clientID, address.Street, address.Number, address.Neighborhood, address.ZipCode)

	a, err := scanAdditionalAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrAddressNotFound
		}
		return nil, err
	}

	return a, nil
}

// Delete implementa client.AdditionalAddressRepository.Delete
func (r *AdditionalAddressRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM additional_addresses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir endereço adicional: %w", err)
	}

	if result.RowsAffected() == 0 {
		return client.ErrAddressNotFound
	}

	return nil
}

func scanAdditionalAddress(row rowScanner) (*client.AdditionalAddress, error) {
	var a client.AdditionalAddress
	var addressJSON []byte

	err := row.Scan(&a.ID, &a.ClientID, &addressJSON, &a.Label, &a.IsFavorite,
		&a.UsedCount, &a.LastUsedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao ler endereço adicional: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &a.Address); err != nil {
		return nil, fmt.Errorf("erro ao converter endereço: %w", err)
	}

	return &a, nil
}
