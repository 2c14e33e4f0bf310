package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/category"
)

// CategoryRepository implementa a interface category.Repository
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) category.Repository {
	return &CategoryRepository{db: db}
}

// Save implementa category.Repository.Save (upsert pelo ID)
func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (
			id, name, description, parent_category_id, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description,
			parent_category_id = EXCLUDED.parent_category_id,
			is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at`,
		c.ID, c.Name, c.Description, c.ParentCategoryID, c.IsActive,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar categoria: %w", err)
	}

	return nil
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var c category.Category
	var parentID *string

	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, parent_category_id, is_active, created_at, updated_at
		FROM categories WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Description, &parentID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	if parentID != nil {
		c.ParentCategoryID = *parentID
	}

	return &c, nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*category.Category, error) {
	query := `SELECT id, name, description, parent_category_id, is_active, created_at, updated_at
		FROM categories`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		var c category.Category
		var parentID *string

		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &parentID,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		if parentID != nil {
			c.ParentCategoryID = *parentID
		}

		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return categories, nil
}

// Count implementa category.Repository.Count
func (r *CategoryRepository) Count(ctx context.Context, onlyActive bool) (int, error) {
	query := "SELECT COUNT(*) FROM categories"
	if onlyActive {
		query += " WHERE is_active = true"
	}

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar categorias: %w", err)
	}

	return count, nil
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
