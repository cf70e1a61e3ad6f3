package employee

import "time"

type Employee struct {
	ID             string
	OrganizationID string
	FullName       string
	Position       *string

	// Per-employee override of the organization's "allow self
	// time-edit" setting; nil means "inherit".
	AllowSelfTimeEdit *bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SelfTimeEditAllowed resolves the effective self-edit flag for this
// employee given the organization-level setting.
func (e *Employee) SelfTimeEditAllowed(orgDefault bool) bool {
	if e.AllowSelfTimeEdit != nil {
		return *e.AllowSelfTimeEdit
	}
	return orgDefault
}
