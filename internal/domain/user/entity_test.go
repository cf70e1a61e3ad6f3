package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrivileged(t *testing.T) {
	assert.True(t, IsPrivileged(RoleAdmin))
	assert.True(t, IsPrivileged(RoleOwner))
	assert.True(t, IsPrivileged(RoleManager))
	assert.False(t, IsPrivileged(RoleEmployee))
	assert.False(t, IsPrivileged(Role("intern")))
}

func TestFromClaims(t *testing.T) {
	p, err := FromClaims(map[string]interface{}{
		"user_id":         "u-1",
		"employee_id":     "e-1",
		"organization_id": "org-1",
		"role":            "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "e-1", p.EmployeeID)
	assert.Equal(t, "org-1", p.OrganizationID)
	assert.Equal(t, RoleManager, p.Role)
	assert.True(t, p.IsPrivileged())
	assert.True(t, p.IsSelf("e-1"))
	assert.False(t, p.IsSelf("e-2"))
}

func TestFromClaims_MissingOrganization(t *testing.T) {
	_, err := FromClaims(map[string]interface{}{
		"user_id": "u-1",
		"role":    "employee",
	})
	assert.Error(t, err)
}

func TestFromClaims_NoEmployeeLink(t *testing.T) {
	p, err := FromClaims(map[string]interface{}{
		"user_id":         "u-1",
		"organization_id": "org-1",
		"role":            "admin",
	})
	require.NoError(t, err)
	assert.Empty(t, p.EmployeeID)
	assert.False(t, p.IsSelf(""))
}
