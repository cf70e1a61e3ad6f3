package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, organization_id, full_name, position, allow_self_time_edit,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
		  AND organization_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&emp.ID, &emp.OrganizationID, &emp.FullName, &emp.Position, &emp.AllowSelfTimeEdit,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
