package jwt

import (
	"context"
	"testing"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", "15m")
	require.NoError(t, err)

	emp := int64(42)
	tokenString, expiresAt, err := svc.GenerateAccessToken(auth.Principal{UserID: 7, EmployeeID: &emp, Role: auth.RoleEmployee})
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, claims["type"])

	p, err := auth.PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.UserID)
	require.NotNil(t, p.EmployeeID)
	assert.Equal(t, emp, *p.EmployeeID)
	assert.Equal(t, auth.RoleEmployee, p.Role)
}

func TestNewJWTServiceRejectsBadExpiration(t *testing.T) {
	_, err := NewJWTService("secret", "forever")
	assert.Error(t, err)
}

func TestTokenFromOtherSecretIsRejected(t *testing.T) {
	a, err := NewJWTService("secret-a", "1h")
	require.NoError(t, err)
	b, err := NewJWTService("secret-b", "1h")
	require.NoError(t, err)

	tokenString, _, err := a.GenerateAccessToken(auth.Principal{UserID: 1, Role: auth.RoleAdmin})
	require.NoError(t, err)

	_, err = b.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
