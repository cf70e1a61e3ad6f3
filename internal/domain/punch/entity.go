package punch

import "time"

// EntryType is the kind of clock action a punch event records.
type EntryType string

const (
	EntryClockIn    EntryType = "clock_in"
	EntryClockOut   EntryType = "clock_out"
	EntryBreakStart EntryType = "break_start"
	EntryBreakEnd   EntryType = "break_end"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryClockIn, EntryClockOut, EntryBreakStart, EntryBreakEnd:
		return true
	}
	return false
}

// PunchEvent is one observed clock action. Events are immutable except
// through the manual-correction path, which overwrites the timestamp of
// exactly one event per (employee, type, day) and marks it manual.
type PunchEvent struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	Type           EntryType
	Timestamp      time.Time // absolute instant, stored UTC
	LocationID     *string
	IsManual       bool
	Note           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Anomaly is an advisory flag attached to a DayAggregate. Anomalies are
// never fatal; the aggregator degrades to zero-duration contributions
// and leaves logging to the caller.
type Anomaly string

const (
	AnomalyOrphanClockOut   Anomaly = "orphan_clock_out"
	AnomalyNegativeInterval Anomaly = "negative_interval"
)

// BreakInterval is one completed break within a day.
type BreakInterval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the whole minutes spanned by the interval.
func (b BreakInterval) Minutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// DayAggregate is the derived summary of one employee's punch events on
// one organization-local calendar day. It is recomputed from the event
// stream on every read and never persisted.
type DayAggregate struct {
	EmployeeID     string
	Date           time.Time // midnight in the organization's timezone
	ClockIn        *time.Time
	ClockOut       *time.Time
	BreakIntervals []BreakInterval
	WorkMinutes    int
	BreakMinutes   int
	LocationID     *string
	Anomalies      []Anomaly
}

// HasAnomaly reports whether the aggregate carries the given flag.
func (d DayAggregate) HasAnomaly(a Anomaly) bool {
	for _, got := range d.Anomalies {
		if got == a {
			return true
		}
	}
	return false
}
