package timesheet

import (
	"strings"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

// ChangeStatusRequest moves one timesheet through the review workflow.
type ChangeStatusRequest struct {
	ID            string  `json:"-"`
	Status        string  `json:"status"`
	ReviewComment *string `json:"review_comment,omitempty"`
}

func (r *ChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	status := Status(strings.ToLower(r.Status))
	if !status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, pending, approved, rejected",
		})
	}

	if status == StatusRejected && (r.ReviewComment == nil || validator.IsEmpty(*r.ReviewComment)) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_comment",
			Message: "review_comment is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkChangeStatusRequest applies one status change to several
// timesheets. Items are processed independently; the batch is not
// atomic and the response reports per-item outcomes.
type BulkChangeStatusRequest struct {
	IDs           []string `json:"ids"`
	Status        string   `json:"status"`
	ReviewComment *string  `json:"review_comment,omitempty"`
}

func (r *BulkChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one timesheet id is required",
		})
	}

	single := ChangeStatusRequest{Status: r.Status, ReviewComment: r.ReviewComment}
	if err := single.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkChangeStatusItem is one per-item outcome of a bulk status change.
type BulkChangeStatusItem struct {
	ID      string  `json:"id"`
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

type BulkChangeStatusResponse struct {
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
	Items     []BulkChangeStatusItem `json:"items"`
}

// UpdateTimesheetRequest changes the declared period bounds. Only legal
// while the timesheet is a draft.
type UpdateTimesheetRequest struct {
	ID          string  `json:"-"`
	PeriodStart *string `json:"period_start,omitempty"` // YYYY-MM-DD
	PeriodEnd   *string `json:"period_end,omitempty"`   // YYYY-MM-DD
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodStart == nil && r.PeriodEnd == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "period_start or period_end is required",
		})
	}

	if r.PeriodStart != nil {
		if _, valid := validator.IsValidDate(*r.PeriodStart); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "period_start",
				Message: "period_start must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PeriodEnd != nil {
		if _, valid := validator.IsValidDate(*r.PeriodEnd); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "period_end",
				Message: "period_end must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimesheetFilter narrows timesheet listings.
type TimesheetFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, pending, approved, rejected",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimesheetResponse is the API shape of a timesheet with its freshly
// recomputed period numbers.
type TimesheetResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	ReviewComment *string `json:"review_comment,omitempty"`

	// Recomputed from punch events on every read.
	TotalHours    float64 `json:"total_hours"`
	BreakHours    float64 `json:"break_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	Days []punch.DayAggregateResponse `json:"days,omitempty"`
}

type ListTimesheetsResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Timesheets []TimesheetResponse `json:"timesheets"`
}
