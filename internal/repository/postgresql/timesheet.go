package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

const timesheetColumns = `t.id, t.employee_id, t.organization_id, t.period_start, t.period_end,
	   t.status, t.reviewed_by, t.reviewed_at, t.review_comment,
	   t.total_hours, t.break_hours, t.overtime_hours,
	   t.created_at, t.updated_at`

func scanTimesheet(row pgx.Row, withEmployeeName bool) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	dest := []interface{}{
		&ts.ID, &ts.EmployeeID, &ts.OrganizationID, &ts.PeriodStart, &ts.PeriodEnd,
		&ts.Status, &ts.ReviewedBy, &ts.ReviewedAt, &ts.ReviewComment,
		&ts.TotalHours, &ts.BreakHours, &ts.OvertimeHours,
		&ts.CreatedAt, &ts.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &ts.EmployeeName)
	}
	err := row.Scan(dest...)
	return ts, err
}

// GetByID implements timesheet.TimesheetRepository.
func (t *timesheetRepository) GetByID(ctx context.Context, id string, organizationID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timesheetColumns + `, e.full_name
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
		  AND t.organization_id = $2
	`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, id, organizationID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	return ts, nil
}

// FindCovering implements timesheet.TimesheetRepository.
func (t *timesheetRepository) FindCovering(ctx context.Context, employeeID string, date time.Time, organizationID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		WHERE t.employee_id = $1
		  AND t.organization_id = $2
		  AND t.period_start <= $3
		  AND t.period_end >= $3
		ORDER BY t.period_start DESC
		LIMIT 1
	`

	ts, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, organizationID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrNoCoveringTimesheet
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to find covering timesheet: %w", err)
	}

	return ts, nil
}

// ListOverlapping implements timesheet.TimesheetRepository.
func (t *timesheetRepository) ListOverlapping(ctx context.Context, employeeID string, start, end time.Time, organizationID string) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		WHERE t.employee_id = $1
		  AND t.organization_id = $2
		  AND t.period_start <= $4
		  AND t.period_end >= $3
		ORDER BY t.period_start ASC
	`

	rows, err := q.Query(ctx, query, employeeID, organizationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		sheets = append(sheets, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheets: %w", err)
	}

	return sheets, nil
}

// List implements timesheet.TimesheetRepository.
func (t *timesheetRepository) List(ctx context.Context, filter timesheet.TimesheetFilter, organizationID string) ([]timesheet.Timesheet, int64, error) {
	q := GetQuerier(ctx, t.db)

	conditions := []string{"t.organization_id = $1"}
	args := []interface{}{organizationID}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", len(args)))
	}
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("t.period_end >= $%d", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("t.period_start <= $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM timesheets t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count timesheets: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + timesheetColumns + `, e.full_name
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE ` + where + `
		ORDER BY t.period_start DESC, t.created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		sheets = append(sheets, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate timesheets: %w", err)
	}

	return sheets, total, nil
}

// UpdateReview implements timesheet.TimesheetRepository.
func (t *timesheetRepository) UpdateReview(ctx context.Context, ts timesheet.Timesheet) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE timesheets
		SET status = $3,
			reviewed_by = $4,
			reviewed_at = $5,
			review_comment = $6,
			total_hours = $7,
			break_hours = $8,
			overtime_hours = $9,
			updated_at = NOW()
		WHERE id = $1
		  AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query,
		ts.ID, ts.OrganizationID,
		ts.Status, ts.ReviewedBy, ts.ReviewedAt, ts.ReviewComment,
		ts.TotalHours, ts.BreakHours, ts.OvertimeHours,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

// UpdatePeriod implements timesheet.TimesheetRepository.
func (t *timesheetRepository) UpdatePeriod(ctx context.Context, id string, periodStart, periodEnd time.Time, organizationID string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE timesheets
		SET period_start = $3,
			period_end = $4,
			updated_at = NOW()
		WHERE id = $1
		  AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query, id, organizationID, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("failed to update timesheet period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

// Delete implements timesheet.TimesheetRepository.
func (t *timesheetRepository) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		DELETE FROM timesheets
		WHERE id = $1
		  AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}
