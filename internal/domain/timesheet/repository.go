package timesheet

import (
	"context"
	"time"
)

type TimesheetRepository interface {
	// GetByID returns the timesheet scoped to the organization, or
	// ErrTimesheetNotFound.
	GetByID(ctx context.Context, id string, organizationID string) (Timesheet, error)

	// FindCovering returns the employee's timesheet whose period
	// contains date, or ErrNoCoveringTimesheet.
	FindCovering(ctx context.Context, employeeID string, date time.Time, organizationID string) (Timesheet, error)

	// ListOverlapping returns the employee's timesheets whose periods
	// intersect [start, end], ordered by period start.
	ListOverlapping(ctx context.Context, employeeID string, start, end time.Time, organizationID string) ([]Timesheet, error)

	// List returns filtered timesheets plus the unpaginated total.
	List(ctx context.Context, filter TimesheetFilter, organizationID string) ([]Timesheet, int64, error)

	// UpdateReview persists a status change together with reviewer
	// fields and the refreshed advisory totals.
	UpdateReview(ctx context.Context, ts Timesheet) error

	// UpdatePeriod persists new period bounds.
	UpdatePeriod(ctx context.Context, id string, periodStart, periodEnd time.Time, organizationID string) error

	// Delete removes a timesheet record.
	Delete(ctx context.Context, id string, organizationID string) error
}
