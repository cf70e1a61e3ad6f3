package punch

import (
	"context"
	"time"
)

// PunchRepository is the event store contract. Reads return events
// ordered by timestamp ascending; corrections go through the
// find-or-create slot addressed by (employee, type, day).
type PunchRepository interface {
	// ListByEmployeeRange returns all events for the employee whose
	// timestamp falls in [fromUTC, toUTC), ordered ascending.
	ListByEmployeeRange(ctx context.Context, employeeID string, fromUTC, toUTC time.Time, organizationID string) ([]PunchEvent, error)

	// FindByTypeAndDay returns the first event of the given type in
	// [dayStartUTC, dayEndUTC), or nil when none exists.
	FindByTypeAndDay(ctx context.Context, employeeID string, entryType EntryType, dayStartUTC, dayEndUTC time.Time, organizationID string) (*PunchEvent, error)

	// Create inserts a new event.
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// UpdateTimestamp overwrites the timestamp of an existing event,
	// always marking it manual.
	UpdateTimestamp(ctx context.Context, id string, timestamp time.Time, note *string) error
}
