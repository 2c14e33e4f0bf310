package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ana Costa", " ANA@Example.com ", "secret123", RoleStaff)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, StatusActive, u.Status)
	assert.True(t, u.IsActive())
	assert.False(t, u.IsAdmin())
	assert.NotEqual(t, "secret123", u.Password, "senha deve ser armazenada como hash")
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("  ", "ana@example.com", "secret123", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Ana Costa", "invalid", "secret123", RoleStaff)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("Ana Costa", "ana@example.com", "12345", RoleStaff)
	assert.ErrorIs(t, err, ErrShortPassword)
}

func TestCheckPassword(t *testing.T) {
	u, err := NewUser("Ana Costa", "ana@example.com", "secret123", RoleAdmin)
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.True(t, u.IsAdmin())
}

func TestSetPasswordReplacesHash(t *testing.T) {
	u, err := NewUser("Ana Costa", "ana@example.com", "secret123", RoleStaff)
	require.NoError(t, err)

	require.NoError(t, u.SetPassword("newsecret"))
	assert.False(t, u.CheckPassword("secret123"))
	assert.True(t, u.CheckPassword("newsecret"))

	assert.ErrorIs(t, u.SetPassword("123"), ErrShortPassword)
	assert.True(t, u.CheckPassword("newsecret"), "senha inválida não substitui a atual")
}

func TestUserLifecycle(t *testing.T) {
	u, err := NewUser("Ana Costa", "ana@example.com", "secret123", RoleManager)
	require.NoError(t, err)

	assert.True(t, u.LastLoginAt.IsZero())
	u.RegisterLogin()
	assert.False(t, u.LastLoginAt.IsZero())

	u.Block()
	assert.Equal(t, StatusBlocked, u.Status)
	assert.False(t, u.IsActive())
}
