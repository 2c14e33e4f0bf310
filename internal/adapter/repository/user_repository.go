package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rssarti/PDV-Delivery/internal/domain/user"
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{db: db}
}

// Save implementa user.Repository.Save (upsert pelo ID)
func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (
			id, name, email, password, role, status, last_login_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email,
			password = EXCLUDED.password, role = EXCLUDED.role,
			status = EXCLUDED.status, last_login_at = EXCLUDED.last_login_at,
			updated_at = EXCLUDED.updated_at`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.Status, u.LastLoginAt,
		u.CreatedAt, u.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, role, status, last_login_at,
			created_at, updated_at
		FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, role, status, last_login_at,
			created_at, updated_at
		FROM users WHERE email = $1`, email)
	return r.scanUser(row)
}

// CountAdmins implementa user.Repository.CountAdmins
func (r *UserRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE role = $1", user.RoleAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar administradores: %w", err)
	}

	return count, nil
}

func (r *UserRepository) scanUser(row rowScanner) (*user.User, error) {
	var u user.User

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao ler usuário: %w", err)
	}

	return &u, nil
}
