package location

import "time"

// WorkLocation is a named site punch events may reference. Exports
// render the name, or "N/A" when a day has no location.
type WorkLocation struct {
	ID             string
	OrganizationID string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
