package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/recipe"
)

// RecipeRepository implementa a interface recipe.Repository
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository cria uma nova instância de RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) recipe.Repository {
	return &RecipeRepository{db: db}
}

const recipeColumns = `id, product_id, name, description, preparation_time,
	yield, yield_unit, instructions, total_cost, is_active, items,
	created_at, updated_at`

// Save implementa recipe.Repository.Save (upsert pelo ID). Os itens da
// receita são persistidos como JSONB na mesma linha.
func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	itemsJSON, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("erro ao serializar itens da receita: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO recipes (
			id, product_id, name, description, preparation_time,
			yield, yield_unit, instructions, total_cost, is_active, items,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			product_id = EXCLUDED.product_id, name = EXCLUDED.name,
			description = EXCLUDED.description,
			preparation_time = EXCLUDED.preparation_time,
			yield = EXCLUDED.yield, yield_unit = EXCLUDED.yield_unit,
			instructions = EXCLUDED.instructions,
			total_cost = EXCLUDED.total_cost, is_active = EXCLUDED.is_active,
			items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.ProductID, rec.Name, rec.Description, rec.PreparationTime,
		rec.Yield, rec.YieldUnit, rec.Instructions, rec.TotalCost, rec.IsActive,
		itemsJSON, rec.CreatedAt, rec.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar receita: %w", err)
	}

	return nil
}

// FindByID implementa recipe.Repository.FindByID
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE id = $1", id)
	return r.scanRecipe(row)
}

// FindByProduct implementa recipe.Repository.FindByProduct
func (r *RecipeRepository) FindByProduct(ctx context.Context, productID string) (*recipe.Recipe, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE product_id = $1", productID)
	return r.scanRecipe(row)
}

// List implementa recipe.Repository.List
func (r *RecipeRepository) List(ctx context.Context, onlyActive bool, limit, offset int) ([]*recipe.Recipe, error) {
	query := "SELECT " + recipeColumns + " FROM recipes"
	if onlyActive {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name ASC LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar receitas: %w", err)
	}
	defer rows.Close()

	recipes := make([]*recipe.Recipe, 0)
	for rows.Next() {
		rec, err := r.scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return recipes, nil
}

// Delete implementa recipe.Repository.Delete
func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir receita: %w", err)
	}

	if result.RowsAffected() == 0 {
		return recipe.ErrRecipeNotFound
	}

	return nil
}

func (r *RecipeRepository) scanRecipe(row rowScanner) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	var itemsJSON []byte

	err := row.Scan(
		&rec.ID, &rec.ProductID, &rec.Name, &rec.Description,
		&rec.PreparationTime, &rec.Yield, &rec.YieldUnit, &rec.Instructions,
		&rec.TotalCost, &rec.IsActive, &itemsJSON,
		&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("erro ao ler receita: %w", err)
	}

	rec.Items = make([]*recipe.Item, 0)
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &rec.Items); err != nil {
			return nil, fmt.Errorf("erro ao deserializar itens da receita: %w", err)
		}
	}

	return &rec, nil
}
