package punch

import (
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH ENTRY DTOs
// ========================================

// EditPunchRequest is a partial manual correction for one employee-day.
// Each present, non-empty field triggers find-or-create-then-update of
// the matching punch event with IsManual=true; omitted fields leave the
// underlying entry untouched.
type EditPunchRequest struct {
	ClockInTime  *string `json:"clock_in_time,omitempty"`  // HH:MM, HH:MM:SS or full datetime
	ClockOutTime *string `json:"clock_out_time,omitempty"` // HH:MM, HH:MM:SS or full datetime
	BreakStart   *string `json:"break_start,omitempty"`
	BreakEnd     *string `json:"break_end,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// Fields returns the provided, non-empty corrections keyed by entry
// type, in deterministic application order.
func (r *EditPunchRequest) Fields() []FieldCorrection {
	var out []FieldCorrection
	add := func(t EntryType, v *string) {
		if v != nil && !validator.IsEmpty(*v) {
			out = append(out, FieldCorrection{Type: t, Value: *v})
		}
	}
	add(EntryClockIn, r.ClockInTime)
	add(EntryClockOut, r.ClockOutTime)
	add(EntryBreakStart, r.BreakStart)
	add(EntryBreakEnd, r.BreakEnd)
	return out
}

// FieldCorrection is one entry-type/value pair from an edit request.
type FieldCorrection struct {
	Type  EntryType
	Value string
}

func (r *EditPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *string) {
		if v == nil || validator.IsEmpty(*v) {
			return
		}
		if !validator.IsValidClockValue(*v) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be HH:MM, HH:MM:SS or a full datetime",
			})
		}
	}

	check("clock_in_time", r.ClockInTime)
	check("clock_out_time", r.ClockOutTime)
	check("break_start", r.BreakStart)
	check("break_end", r.BreakEnd)

	if len(r.Fields()) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of clock_in_time, clock_out_time, break_start, break_end is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayAggregateResponse is the API shape of a derived day summary.
type DayAggregateResponse struct {
	EntryKey     string                  `json:"entry_key"`
	EmployeeID   string                  `json:"employee_id"`
	Date         string                  `json:"date"`
	ClockInTime  *string                 `json:"clock_in_time,omitempty"`
	ClockOutTime *string                 `json:"clock_out_time,omitempty"`
	Breaks       []BreakIntervalResponse `json:"breaks"`
	WorkMinutes  int                     `json:"work_minutes"`
	BreakMinutes int                     `json:"break_minutes"`
	LocationID   *string                 `json:"location_id,omitempty"`
	Anomalies    []string                `json:"anomalies,omitempty"`
}

type BreakIntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
