package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/sale"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

const saleColumns = `id, items, total, payment_method, customer_id, status,
	created_at, cancelled_at, cancel_reason`

// Save implementa sale.Repository.Save (upsert pelo ID). Os itens da venda
// são persistidos como JSONB na mesma linha.
func (r *SaleRepository) Save(ctx context.Context, s *sale.Sale) error {
	itemsJSON, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("erro ao serializar itens da venda: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO sales (
			id, items, total, payment_method, customer_id, status,
			created_at, cancelled_at, cancel_reason
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			items = EXCLUDED.items, total = EXCLUDED.total,
			payment_method = EXCLUDED.payment_method,
			customer_id = EXCLUDED.customer_id, status = EXCLUDED.status,
			cancelled_at = EXCLUDED.cancelled_at,
			cancel_reason = EXCLUDED.cancel_reason`,
		s.ID, itemsJSON, s.Total, s.PaymentMethod, s.CustomerID, s.Status,
		s.CreatedAt, s.CancelledAt, s.CancelReason)

	if err != nil {
		return fmt.Errorf("erro ao salvar venda: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+saleColumns+" FROM sales WHERE id = $1", id)
	return r.scanSale(row)
}

// FindAll implementa sale.Repository.FindAll
func (r *SaleRepository) FindAll(ctx context.Context, opts sale.ListOptions) ([]*sale.Sale, error) {
	query := "SELECT " + saleColumns + " FROM sales"
	args := []interface{}{}

	if opts.Status != "" {
		query += " WHERE status = $1"
		args = append(args, opts.Status)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := r.scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sales, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context, opts sale.ListOptions) (int, error) {
	query := "SELECT COUNT(*) FROM sales"
	args := []interface{}{}

	if opts.Status != "" {
		query += " WHERE status = $1"
		args = append(args, opts.Status)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// Cancel implementa sale.Repository.Cancel. A condição de status na
// cláusula WHERE garante que o cancelamento nunca sobrescreve o motivo
// de uma venda já cancelada.
func (r *SaleRepository) Cancel(ctx context.Context, id, reason string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sales SET status = $1, cancel_reason = $2, cancelled_at = now()
		WHERE id = $3 AND status != $1`,
		sale.StatusCancelled, reason, id)

	if err != nil {
		return fmt.Errorf("erro ao cancelar venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}

// BulkCancel implementa sale.Repository.BulkCancel. Vendas já canceladas
// são ignoradas silenciosamente.
func (r *SaleRepository) BulkCancel(ctx context.Context, ids []string, reason string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE sales SET status = $1, cancel_reason = $2, cancelled_at = now()
		WHERE id = ANY($3) AND status != $1`,
		sale.StatusCancelled, reason, ids)

	if err != nil {
		return fmt.Errorf("erro ao cancelar vendas em lote: %w", err)
	}

	return nil
}

func (r *SaleRepository) scanSale(row rowScanner) (*sale.Sale, error) {
	var s sale.Sale
	var itemsJSON []byte
	var customerID *string

	err := row.Scan(
		&s.ID, &itemsJSON, &s.Total, &s.PaymentMethod, &customerID,
		&s.Status, &s.CreatedAt, &s.CancelledAt, &s.CancelReason)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao ler venda: %w", err)
	}

	if customerID != nil {
		s.CustomerID = *customerID
	}

	s.Items = make([]sale.Item, 0)
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
			return nil, fmt.Errorf("erro ao deserializar itens da venda: %w", err)
		}
	}

	return &s, nil
}
