package user

import "fmt"

type Role string

const (
	RoleAdmin    Role = "admin"    // Platform administrator - full access
	RoleOwner    Role = "owner"    // Organization owner - full access
	RoleManager  Role = "manager"  // Can review timesheets and edit punches
	RoleEmployee Role = "employee" // Regular employee
)

// IsPrivileged reports whether a role is exempt from self-only and
// status-gated edit restrictions. Every role check in the codebase goes
// through this predicate.
func IsPrivileged(role Role) bool {
	return role == RoleAdmin || role == RoleOwner || role == RoleManager
}

// Principal is the already-validated identity attached to a request.
// Authentication and role resolution happen upstream; the core only
// consumes the resulting claims.
type Principal struct {
	UserID         string
	EmployeeID     string
	OrganizationID string
	Role           Role
}

// IsPrivileged reports whether the principal holds a privileged role.
func (p Principal) IsPrivileged() bool {
	return IsPrivileged(p.Role)
}

// IsSelf reports whether the principal is the employee being acted on.
func (p Principal) IsSelf(employeeID string) bool {
	return p.EmployeeID != "" && p.EmployeeID == employeeID
}

// FromClaims builds a Principal from verified JWT claims.
func FromClaims(claims map[string]interface{}) (Principal, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return Principal{}, fmt.Errorf("organization_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Principal{}, fmt.Errorf("role claim is missing or invalid")
	}

	// employee_id is absent for principals that are not linked to an
	// employee record (platform admins).
	employeeID, _ := claims["employee_id"].(string)

	return Principal{
		UserID:         userID,
		EmployeeID:     employeeID,
		OrganizationID: organizationID,
		Role:           Role(roleStr),
	}, nil
}
