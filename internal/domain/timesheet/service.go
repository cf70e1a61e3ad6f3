package timesheet

import (
	"context"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
)

// TimesheetService defines the review workflow and the manual punch
// correction path.
type TimesheetService interface {
	// GetTimesheet returns one timesheet with its period numbers
	// recomputed from punch events.
	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)

	// ListTimesheets returns filtered timesheets with recomputed
	// period numbers.
	ListTimesheets(ctx context.Context, filter TimesheetFilter) (ListTimesheetsResponse, error)

	// GetDayEntry returns the derived aggregate for one employee-day.
	GetDayEntry(ctx context.Context, key punch.EntryKey) (punch.DayAggregateResponse, error)

	// EditPunchEntry applies a partial manual correction to one
	// employee-day and returns the fresh aggregate.
	EditPunchEntry(ctx context.Context, key punch.EntryKey, req punch.EditPunchRequest) (punch.DayAggregateResponse, error)

	// ChangeStatus moves a timesheet through the review workflow.
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (TimesheetResponse, error)

	// BulkChangeStatus processes several status changes independently
	// and reports per-item outcomes.
	BulkChangeStatus(ctx context.Context, req BulkChangeStatusRequest) (BulkChangeStatusResponse, error)

	// UpdateTimesheet changes period bounds of a draft timesheet.
	UpdateTimesheet(ctx context.Context, req UpdateTimesheetRequest) (TimesheetResponse, error)

	// DeleteTimesheet removes a draft timesheet.
	DeleteTimesheet(ctx context.Context, id string) error
}
