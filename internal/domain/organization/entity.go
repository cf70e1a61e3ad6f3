package organization

import "time"

type Organization struct {
	ID       string
	Name     string
	Timezone string

	// Persisted overrides for the timesheet settings; nil means
	// "use the configured default".
	AllowSelfTimeEdit        *bool
	OvertimeThresholdMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings is the typed timesheet configuration an organization resolves
// to. Defaults come from application config and are merged with the
// persisted per-organization overrides at load time.
type Settings struct {
	AllowSelfTimeEdit        bool
	OvertimeThresholdMinutes int
}

// DefaultOvertimeThresholdMinutes is 40 hours, applied once per pay
// period.
const DefaultOvertimeThresholdMinutes = 2400

// DefaultSettings returns the settings used when an organization has no
// persisted overrides.
func DefaultSettings() Settings {
	return Settings{
		AllowSelfTimeEdit:        false,
		OvertimeThresholdMinutes: DefaultOvertimeThresholdMinutes,
	}
}

// ResolveSettings merges the organization's persisted overrides onto the
// supplied defaults.
func (o *Organization) ResolveSettings(defaults Settings) Settings {
	resolved := defaults
	if o.AllowSelfTimeEdit != nil {
		resolved.AllowSelfTimeEdit = *o.AllowSelfTimeEdit
	}
	if o.OvertimeThresholdMinutes != nil && *o.OvertimeThresholdMinutes > 0 {
		resolved.OvertimeThresholdMinutes = *o.OvertimeThresholdMinutes
	}
	return resolved
}

// Location returns the organization's time.Location, falling back to UTC
// when the stored timezone name is invalid.
func (o *Organization) Location() *time.Location {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
