package export

import (
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/validator"
)

// ========================================
// EXPORT DTOs
// ========================================

// Filter selects the employee-period to export. The date range is
// required; a non-privileged caller may only export their own entries.
type Filter struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD, required
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD, required
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"` // privileged only for other employees
	LocationID *string `json:"location_id,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, valid := validator.IsValidDate(f.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, valid := validator.IsValidDate(f.EndDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 {
		start, _ := validator.IsValidDate(f.StartDate)
		end, _ := validator.IsValidDate(f.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Row is one per-day line of an export. Both representations render
// the same rows, so their numbers agree by construction.
type Row struct {
	EmployeeName  string
	Date          string // yyyy-MM-dd
	LocationName  string // "N/A" when the day has no location
	ClockIn       string // org-local HH:MM or "N/A"
	ClockOut      string // org-local HH:MM or "N/A"
	WorkDuration  string // formatted via FormatDuration
	BreakDuration string
	BreakCount    int

	// Raw minutes kept alongside the formatted fields so the summary
	// can be cross-checked against the rows.
	WorkMinutes  int
	BreakMinutes int
}

// Summary is the trailing block of an export.
type Summary struct {
	EmployeeName  string
	PeriodStart   string
	PeriodEnd     string
	TotalHours    string // formatted via FormatDuration
	BreakHours    string
	OvertimeHours string
	Status        string
}

// Document is the fully assembled export payload the renderers consume.
type Document struct {
	Rows    []Row
	Summary Summary
}
