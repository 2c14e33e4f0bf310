package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/client"
)

// ErrClientDuplicateKey indica violação de unicidade de email ou documento
var ErrClientDuplicateKey = errors.New("cliente com mesmo email ou documento já existe")

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{db: db}
}

// Save implementa client.Repository.Save (upsert pelo ID)
func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	address, err := json.Marshal(c.Address)
	if err != nil {
		return fmt.Errorf("erro ao converter endereço para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO clients (
			id, name, email, phone, address, cpf, cnpj, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email,
			phone = EXCLUDED.phone, address = EXCLUDED.address,
			cpf = EXCLUDED.cpf, cnpj = EXCLUDED.cnpj,
			status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
		c.ID, c.Name, c.Email, c.Phone, address, c.CPF, c.CNPJ, c.Status,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao salvar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	return r.findOne(ctx,
		`SELECT id, name, email, phone, address, cpf, cnpj, status, created_at, updated_at
		FROM clients WHERE id = $1`, id)
}

// FindByEmail implementa client.Repository.FindByEmail
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	return r.findOne(ctx,
		`SELECT id, name, email, phone, address, cpf, cnpj, status, created_at, updated_at
		FROM clients WHERE email = $1`, strings.ToLower(email))
}

// FindByDocument implementa client.Repository.FindByDocument
func (r *ClientRepository) FindByDocument(ctx context.Context, document string) (*client.Client, error) {
	return r.findOne(ctx,
		`SELECT id, name, email, phone, address, cpf, cnpj, status, created_at, updated_at
		FROM clients WHERE cpf = $1 OR cnpj = $1`, document)
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, status client.Status, limit, offset int) ([]*client.Client, error) {
	query := `SELECT id, name, email, phone, address, cpf, cnpj, status, created_at, updated_at
		FROM clients`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY name ASC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*client.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return clients, nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context, status client.Status) (int, error) {
	var count int
	var err error

	if status != "" {
		err = r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clients WHERE status = $1", status).Scan(&count)
	} else {
		err = r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clients").Scan(&count)
	}

	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) findOne(ctx context.Context, query string, args ...interface{}) (*client.Client, error) {
	row := r.db.QueryRow(ctx, query, args...)

	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrClientNotFound
		}
		return nil, err
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*client.Client, error) {
	var c client.Client
	var addressJSON []byte

	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &addressJSON,
		&c.CPF, &c.CNPJ, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao ler cliente: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &c.Address); err != nil {
		return nil, fmt.Errorf("erro ao converter endereço: %w", err)
	}

	return &c, nil
}
