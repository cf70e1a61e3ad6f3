package response

import (
	"errors"
	"net/http"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/export"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/location"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/organization"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Guard denials carry a machine-readable reason code
	var authErr *timesheet.AuthorizationError
	if errors.As(err, &authErr) {
		ForbiddenWithReason(w, "Not authorized to perform this action", string(authErr.Reason))
		return
	}

	switch {
	// Not-found category
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrNoCoveringTimesheet):
		NotFound(w, "No timesheet covers the requested date")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Work location not found")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch event not found")

	// Malformed input
	case errors.Is(err, punch.ErrInvalidEntryKey):
		BadRequest(w, "Entry key must be in {employeeId}_{yyyy-MM-dd} format", nil)
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Period start must not be after period end", nil)
	case errors.Is(err, export.ErrDateRangeRequired):
		BadRequest(w, "start_date and end_date are required", nil)

	// Workflow conflicts
	case errors.Is(err, timesheet.ErrInvalidStatusTransition):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrReviewCommentRequired):
		ValidationError(w, map[string]string{"review_comment": "review_comment is required when rejecting"})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
