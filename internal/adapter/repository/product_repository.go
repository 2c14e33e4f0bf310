package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/product"
)

// ErrProductDuplicateKey indica violação de unicidade de código interno ou EAN
var ErrProductDuplicateKey = errors.New("produto com mesmo código já existe")

const productColumns = `id, name, description, type, category_id, unit, pricing,
	tax_info, availability, ean_code, internal_code, preparation_time,
	minimum_stock, current_stock, stock_status, expiration_date, batch_number,
	is_active, can_be_ingredient, needs_recipe, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

// Save implementa product.Repository.Save (upsert pelo ID)
func (r *ProductRepository) Save(ctx context.Context, p *product.Product) error {
	unit, err := json.Marshal(p.Unit)
	if err != nil {
		return fmt.Errorf("erro ao converter unidade para JSON: %w", err)
	}
	pricing, err := json.Marshal(p.Pricing)
	if err != nil {
		return fmt.Errorf("erro ao converter preços para JSON: %w", err)
	}
	taxInfo, err := json.Marshal(p.TaxInfo)
	if err != nil {
		return fmt.Errorf("erro ao converter dados fiscais para JSON: %w", err)
	}
	availability, err := json.Marshal(p.Availability)
	if err != nil {
		return fmt.Errorf("erro ao converter disponibilidade para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, description, type, category_id, unit, pricing, tax_info,
			availability, ean_code, internal_code, preparation_time,
			minimum_stock, current_stock, stock_status, expiration_date,
			batch_number, is_active, can_be_ingredient, needs_recipe,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			type = EXCLUDED.type, category_id = EXCLUDED.category_id,
			unit = EXCLUDED.unit, pricing = EXCLUDED.pricing,
			tax_info = EXCLUDED.tax_info, availability = EXCLUDED.availability,
			ean_code = EXCLUDED.ean_code, internal_code = EXCLUDED.internal_code,
			preparation_time = EXCLUDED.preparation_time,
			minimum_stock = EXCLUDED.minimum_stock,
			current_stock = EXCLUDED.current_stock,
			stock_status = EXCLUDED.stock_status,
			expiration_date = EXCLUDED.expiration_date,
			batch_number = EXCLUDED.batch_number,
			is_active = EXCLUDED.is_active,
			can_be_ingredient = EXCLUDED.can_be_ingredient,
			needs_recipe = EXCLUDED.needs_recipe,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.Name, p.Description, p.Type, p.CategoryID, unit, pricing,
		taxInfo, availability, p.EANCode, p.InternalCode, p.PreparationTime,
		p.MinimumStock, p.CurrentStock, p.StockStatus, p.ExpirationDate,
		p.BatchNumber, p.IsActive, p.CanBeIngredient, p.NeedsRecipe,
		p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao salvar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return r.findOne(ctx,
		fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns), id)
}

// FindByInternalCode implementa product.Repository.FindByInternalCode
func (r *ProductRepository) FindByInternalCode(ctx context.Context, internalCode string) (*product.Product, error) {
	return r.findOne(ctx,
		fmt.Sprintf("SELECT %s FROM products WHERE internal_code = $1", productColumns), internalCode)
}

// FindByEANCode implementa product.Repository.FindByEANCode
func (r *ProductRepository) FindByEANCode(ctx context.Context, eanCode string) (*product.Product, error) {
	return r.findOne(ctx,
		fmt.Sprintf("SELECT %s FROM products WHERE ean_code = $1", productColumns), eanCode)
}

// FindByName implementa product.Repository.FindByName
func (r *ProductRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products
			WHERE name ILIKE $1
			ORDER BY name ASC
			LIMIT $2 OFFSET $3`, productColumns),
		"%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	where, args := buildProductFilter(filter)
	args = append(args, filter.Limit, filter.Offset)

	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, filter product.Filter) (int, error) {
	where, args := buildProductFilter(filter)

	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products "+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) findOne(ctx context.Context, query string, args ...interface{}) (*product.Product, error) {
	row := r.db.QueryRow(ctx, query, args...)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func buildProductFilter(filter product.Filter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.StockStatus != "" {
		args = append(args, filter.StockStatus)
		conditions = append(conditions, fmt.Sprintf("stock_status = $%d", len(args)))
	}
	if filter.OnlyActive {
		conditions = append(conditions, "is_active = true")
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanProduct(row rowScanner) (*product.Product, error) {
	var p product.Product
	var unitJSON, pricingJSON, taxInfoJSON, availabilityJSON []byte

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.CategoryID,
		&unitJSON, &pricingJSON, &taxInfoJSON, &availabilityJSON,
		&p.EANCode, &p.InternalCode, &p.PreparationTime, &p.MinimumStock,
		&p.CurrentStock, &p.StockStatus, &p.ExpirationDate, &p.BatchNumber,
		&p.IsActive, &p.CanBeIngredient, &p.NeedsRecipe, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao ler produto: %w", err)
	}

	if err := json.Unmarshal(unitJSON, &p.Unit); err != nil {
		return nil, fmt.Errorf("erro ao converter unidade: %w", err)
	}
	if err := json.Unmarshal(pricingJSON, &p.Pricing); err != nil {
		return nil, fmt.Errorf("erro ao converter preços: %w", err)
	}
	if err := json.Unmarshal(taxInfoJSON, &p.TaxInfo); err != nil {
		return nil, fmt.Errorf("erro ao converter dados fiscais: %w", err)
	}
	if err := json.Unmarshal(availabilityJSON, &p.Availability); err != nil {
		return nil, fmt.Errorf("erro ao converter disponibilidade: %w", err)
	}

	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}
