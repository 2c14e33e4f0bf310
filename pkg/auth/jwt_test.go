package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rssarti/PDV-Delivery/internal/domain/user"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
	service, err := NewJWTService()
	require.NoError(t, err)
	return service
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Ana Costa", "ana@example.com", "secret123", user.RoleAdmin)
	require.NoError(t, err)
	return u
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestNewJWTServiceExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	service, err := NewJWTService()
	require.NoError(t, err)
	assert.Equal(t, float64(2), service.Expiration().Hours())
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(t)
	u := newTestUser(t)

	token, err := service.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, string(user.RoleAdmin), claims.Role)
	assert.Equal(t, "pdv-delivery-api", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	service := newTestService(t)
	token, err := service.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "another-secret")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
