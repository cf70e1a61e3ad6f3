package jwt

import (
	"context"
	"testing"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	employeeID := "emp_001"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", &employeeID, "org-1", user.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "emp_001", claims["employee_id"])
	assert.Equal(t, "org-1", claims["organization_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])

	principal, err := user.FromClaims(claims)
	require.NoError(t, err)
	assert.True(t, principal.IsPrivileged())
	assert.True(t, principal.IsSelf("emp_001"))
}

func TestGenerateAccessToken_NoEmployee(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, _, err := svc.GenerateAccessToken("user-2", nil, "org-1", user.RoleAdmin)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	principal, err := user.FromClaims(claims)
	require.NoError(t, err)
	assert.Empty(t, principal.EmployeeID)
	assert.False(t, principal.IsSelf("emp_001"))
}
