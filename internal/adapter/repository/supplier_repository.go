package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/supplier"
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{db: db}
}

// Save implementa supplier.Repository.Save (upsert pelo ID)
func (r *SupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (
			id, name, cnpj, email, phone, address, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, cnpj = EXCLUDED.cnpj,
			email = EXCLUDED.email, phone = EXCLUDED.phone,
			address = EXCLUDED.address, is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`,
		s.ID, s.Name, s.CNPJ, s.Email, s.Phone, s.Address, s.IsActive,
		s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar fornecedor: %w", err)
	}

	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier

	err := r.db.QueryRow(ctx,
		`SELECT id, name, cnpj, email, phone, address, is_active, created_at, updated_at
		FROM suppliers WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.CNPJ, &s.Email, &s.Phone, &s.Address,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplier.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*supplier.Supplier, error) {
	query := `SELECT id, name, cnpj, email, phone, address, is_active, created_at, updated_at
		FROM suppliers`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		var s supplier.Supplier

		if err := rows.Scan(&s.ID, &s.Name, &s.CNPJ, &s.Email, &s.Phone,
			&s.Address, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}

		suppliers = append(suppliers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return suppliers, nil
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context, onlyActive bool) (int, error) {
	query := "SELECT COUNT(*) FROM suppliers"
	if onlyActive {
		query += " WHERE is_active = true"
	}

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}

	return count, nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return supplier.ErrSupplierNotFound
	}

	return nil
}
