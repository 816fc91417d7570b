package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalFromClaims(t *testing.T) {
	p, err := PrincipalFromClaims(map[string]any{
		"user_id":     float64(7),
		"employee_id": float64(42),
		"role":        "employee",
		"type":        "access",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.UserID)
	require.NotNil(t, p.EmployeeID)
	assert.Equal(t, int64(42), *p.EmployeeID)
	assert.False(t, p.IsManager())

	emp, err := p.RequireEmployee()
	require.NoError(t, err)
	assert.Equal(t, int64(42), emp)
}

func TestPrincipalWithoutEmployee(t *testing.T) {
	p, err := PrincipalFromClaims(map[string]any{
		"user_id":     "3",
		"employee_id": nil,
		"role":        "hr",
	})
	require.NoError(t, err)
	assert.Nil(t, p.EmployeeID)
	assert.True(t, p.IsManager())

	_, err = p.RequireEmployee()
	assert.ErrorIs(t, err, ErrNoEmployeeProfile)
}

func TestPrincipalFromClaimsRejectsBadClaims(t *testing.T) {
	cases := []map[string]any{
		{"role": "employee"},
		{"user_id": float64(1)},
		{"user_id": float64(1.5), "role": "employee"},
		{"user_id": float64(1), "role": "employee", "employee_id": "abc"},
		{"user_id": float64(-1), "role": "employee"},
		{"user_id": true, "role": "employee"},
	}
	for _, claims := range cases {
		_, err := PrincipalFromClaims(claims)
		assert.ErrorIs(t, err, ErrInvalidToken, "%v", claims)
	}
}

func TestClaimsRoundTrip(t *testing.T) {
	emp := int64(42)
	p := Principal{UserID: 9, EmployeeID: &emp, Role: RoleManager}

	// Token claims come back from JSON as float64 or json.Number.
	raw, err := json.Marshal(p.Claims())
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	got, err := PrincipalFromClaims(decoded)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
