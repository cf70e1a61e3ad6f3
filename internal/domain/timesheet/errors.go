package timesheet

import (
	"errors"
	"fmt"
)

// Timesheet domain errors
var (
	ErrTimesheetNotFound       = errors.New("timesheet not found")
	ErrNoCoveringTimesheet     = errors.New("no timesheet covers the requested date")
	ErrInvalidStatusTransition = errors.New("invalid timesheet status transition")
	ErrReviewCommentRequired   = errors.New("a review comment is required to reject a timesheet")
	ErrInvalidPeriod           = errors.New("period start must not be after period end")
)

// DenyReason is the machine-readable cause carried by an authorization
// denial.
type DenyReason string

const (
	DenyStatusNotEditable DenyReason = "status_not_editable"
	DenyNotSelf           DenyReason = "not_self"
	DenyRoleInsufficient  DenyReason = "role_insufficient"
	DenySelfEditDisabled  DenyReason = "self_edit_disabled"
)

// AuthorizationError is returned whenever the edit guard denies a
// mutation. It is a distinct error kind so callers can map it to a 403
// with the reason code attached.
type AuthorizationError struct {
	Reason DenyReason
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Reason)
}

// Deny builds an AuthorizationError for the given reason.
func Deny(reason DenyReason) error {
	return &AuthorizationError{Reason: reason}
}
