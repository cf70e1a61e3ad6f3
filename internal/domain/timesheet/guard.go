package timesheet

import (
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/user"
)

// The edit authorization guard. Pure, total predicates: they never
// touch storage and always return either nil or an AuthorizationError
// with a reason code. Both the punch-edit path and the status-change
// path delegate here so role logic lives in exactly one place.

// CanEditPunches answers "may this actor mutate punch entries for this
// employee right now?". The status gate applies to every actor;
// non-privileged actors must additionally be editing themselves and
// have the self-edit flag enabled.
func CanEditPunches(actor user.Principal, employeeID string, status Status, allowSelfEdit bool) error {
	if !status.Editable() {
		return Deny(DenyStatusNotEditable)
	}
	if actor.IsPrivileged() {
		return nil
	}
	if !actor.IsSelf(employeeID) {
		return Deny(DenyNotSelf)
	}
	if !allowSelfEdit {
		return Deny(DenySelfEditDisabled)
	}
	return nil
}

// CanReview answers "may this actor approve or reject timesheets?".
func CanReview(actor user.Principal) error {
	if !actor.IsPrivileged() {
		return Deny(DenyRoleInsufficient)
	}
	return nil
}

// CanSubmit answers "may this actor move a draft timesheet to pending?".
// Submission is the one status change the owning employee may perform
// without a privileged role.
func CanSubmit(actor user.Principal, employeeID string) error {
	if actor.IsPrivileged() || actor.IsSelf(employeeID) {
		return nil
	}
	return Deny(DenyNotSelf)
}

// CanModifyPeriod answers "may this actor update or delete the
// timesheet record itself (period bounds, not punches)?". Permitted
// only while the timesheet is a draft.
func CanModifyPeriod(actor user.Principal, employeeID string, status Status) error {
	if status != StatusDraft {
		return Deny(DenyStatusNotEditable)
	}
	if actor.IsPrivileged() || actor.IsSelf(employeeID) {
		return nil
	}
	return Deny(DenyNotSelf)
}

// CanView answers "may this actor read this employee's timesheet?".
func CanView(actor user.Principal, employeeID string) error {
	if actor.IsPrivileged() || actor.IsSelf(employeeID) {
		return nil
	}
	return Deny(DenyRoleInsufficient)
}
