package user

import (
	"context"
	"errors"
)

// ErrUserNotFound indica que o usuário referenciado não existe
var ErrUserNotFound = errors.New("usuário não encontrado")

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Save persiste um usuário (criação ou atualização)
	Save(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// CountAdmins conta os administradores cadastrados
	CountAdmins(ctx context.Context) (int, error)
}
