package timesheet

import "time"

// Status is the review state of a timesheet.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transition.
// Reopening a reviewed timesheet is an explicit collaborator operation,
// not a regular transition.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Editable reports whether punch entries under a timesheet in this
// status may still be edited.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusPending
}

// CanTransition reports whether from -> to is a legal lifecycle step:
// draft -> pending -> approved|rejected.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusDraft:
		return to == StatusPending
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	}
	return false
}

// Timesheet is one employee's declared pay period. The cached hour
// totals are advisory only; every consumer-facing number is recomputed
// from punch events at read time.
type Timesheet struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Status         Status
	ReviewedBy     *string
	ReviewedAt     *time.Time
	ReviewComment  *string

	// Advisory cache, refreshed on review; never trusted for display.
	TotalHours    *float64
	BreakHours    *float64
	OvertimeHours *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// Covers reports whether date falls within [PeriodStart, PeriodEnd].
func (t *Timesheet) Covers(date time.Time) bool {
	return !date.Before(t.PeriodStart) && !date.After(t.PeriodEnd)
}

// PeriodSummary is the immutable read-model the period aggregator
// derives strictly from punch events at call time.
type PeriodSummary struct {
	TotalWorkMinutes  int
	TotalBreakMinutes int
	RegularMinutes    int
	OvertimeMinutes   int
}

// TotalHours returns the worked total in fractional hours.
func (p PeriodSummary) TotalHours() float64 { return minutesToHours(p.TotalWorkMinutes) }

// BreakHours returns the break total in fractional hours.
func (p PeriodSummary) BreakHours() float64 { return minutesToHours(p.TotalBreakMinutes) }

// OvertimeHours returns the overtime total in fractional hours.
func (p PeriodSummary) OvertimeHours() float64 { return minutesToHours(p.OvertimeMinutes) }

func minutesToHours(minutes int) float64 {
	return float64(minutes) / 60.0
}
