package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns the employee scoped to the organization, or
	// ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)
}
