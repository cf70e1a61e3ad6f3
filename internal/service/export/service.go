package export

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/export"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/location"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/organization"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/user"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/validator"
	tsservice "github.com/shiftline-hq/timetrack-backend-go/internal/service/timesheet"
)

// notAvailable is the placeholder both export forms render for missing
// values.
const notAvailable = "N/A"

type ExportServiceImpl struct {
	punch.PunchRepository
	timesheet.TimesheetRepository
	employee.EmployeeRepository
	organization.OrganizationRepository
	location.LocationRepository
	defaults organization.Settings
}

func NewExportService(
	punchRepo punch.PunchRepository,
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	organizationRepo organization.OrganizationRepository,
	locationRepo location.LocationRepository,
	defaults organization.Settings,
) export.ExportService {
	return &ExportServiceImpl{
		PunchRepository:        punchRepo,
		TimesheetRepository:    timesheetRepo,
		EmployeeRepository:     employeeRepo,
		OrganizationRepository: organizationRepo,
		LocationRepository:     locationRepo,
		defaults:               defaults,
	}
}

// BuildDocument implements export.ExportService. Both renderers consume
// the document assembled here, so their numbers agree by construction.
func (s *ExportServiceImpl) BuildDocument(ctx context.Context, filter export.Filter) (export.Document, error) {
	if validator.IsEmpty(filter.StartDate) && validator.IsEmpty(filter.EndDate) {
		return export.Document{}, export.ErrDateRangeRequired
	}
	if err := filter.Validate(); err != nil {
		return export.Document{}, err
	}

	principal, err := principalFromContext(ctx)
	if err != nil {
		return export.Document{}, err
	}

	employeeID, err := resolveEmployeeID(principal, filter.EmployeeID)
	if err != nil {
		return export.Document{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, principal.OrganizationID)
	if err != nil {
		return export.Document{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return export.Document{}, err
	}
	loc := org.Location()
	settings := org.ResolveSettings(s.defaults)

	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)

	fromUTC := localDayStart(start, loc)
	toUTC := localDayStart(end.AddDate(0, 0, 1), loc)

	events, err := s.PunchRepository.ListByEmployeeRange(ctx, employeeID, fromUTC, toUTC, principal.OrganizationID)
	if err != nil {
		return export.Document{}, err
	}

	var days []punch.DayAggregate
	for _, bucket := range tsservice.GroupByLocalDay(events, loc) {
		agg := tsservice.AggregateDay(employeeID, bucket.Date, bucket.Events)
		if filter.LocationID != nil && *filter.LocationID != "" {
			if agg.LocationID == nil || *agg.LocationID != *filter.LocationID {
				continue
			}
		}
		days = append(days, agg)
	}

	summary := tsservice.AggregatePeriod(days, settings.OvertimeThresholdMinutes)

	locationNames, err := s.locationNames(ctx, days, principal.OrganizationID)
	if err != nil {
		return export.Document{}, err
	}

	status, err := s.periodStatus(ctx, employeeID, start, end, principal.OrganizationID, filter.Status)
	if err != nil {
		return export.Document{}, err
	}

	doc := export.Document{
		Summary: export.Summary{
			EmployeeName:  emp.FullName,
			PeriodStart:   filter.StartDate,
			PeriodEnd:     filter.EndDate,
			TotalHours:    FormatDuration(summary.TotalWorkMinutes),
			BreakHours:    FormatDuration(summary.TotalBreakMinutes),
			OvertimeHours: FormatDuration(summary.OvertimeMinutes),
			Status:        status,
		},
	}

	for _, day := range days {
		doc.Rows = append(doc.Rows, buildRow(emp.FullName, day, loc, locationNames))
	}

	return doc, nil
}

func buildRow(employeeName string, day punch.DayAggregate, loc *time.Location, locationNames map[string]string) export.Row {
	row := export.Row{
		EmployeeName:  employeeName,
		Date:          day.Date.Format("2006-01-02"),
		LocationName:  notAvailable,
		ClockIn:       notAvailable,
		ClockOut:      notAvailable,
		WorkDuration:  FormatDuration(day.WorkMinutes),
		BreakDuration: FormatDuration(day.BreakMinutes),
		BreakCount:    len(day.BreakIntervals),
		WorkMinutes:   day.WorkMinutes,
		BreakMinutes:  day.BreakMinutes,
	}

	if day.LocationID != nil {
		if name, ok := locationNames[*day.LocationID]; ok {
			row.LocationName = name
		}
	}
	if day.ClockIn != nil {
		row.ClockIn = day.ClockIn.In(loc).Format("15:04")
	}
	if day.ClockOut != nil {
		row.ClockOut = day.ClockOut.In(loc).Format("15:04")
	}

	return row
}

func (s *ExportServiceImpl) locationNames(ctx context.Context, days []punch.DayAggregate, organizationID string) (map[string]string, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, day := range days {
		if day.LocationID != nil && !seen[*day.LocationID] {
			seen[*day.LocationID] = true
			ids = append(ids, *day.LocationID)
		}
	}
	return s.LocationRepository.NamesByIDs(ctx, ids, organizationID)
}

// periodStatus derives the summary's review status from the timesheets
// overlapping the export range: one distinct status renders as-is, none
// as "N/A", several as "mixed".
func (s *ExportServiceImpl) periodStatus(ctx context.Context, employeeID string, start, end time.Time, organizationID string, statusFilter *string) (string, error) {
	sheets, err := s.TimesheetRepository.ListOverlapping(ctx, employeeID, start, end, organizationID)
	if err != nil {
		return "", err
	}

	distinct := make(map[timesheet.Status]bool)
	for _, ts := range sheets {
		if statusFilter != nil && *statusFilter != "" && string(ts.Status) != *statusFilter {
			continue
		}
		distinct[ts.Status] = true
	}

	switch len(distinct) {
	case 0:
		return notAvailable, nil
	case 1:
		for status := range distinct {
			return string(status), nil
		}
	}
	return "mixed", nil
}

// resolveEmployeeID picks the exported employee: an explicit filter for
// privileged callers, the caller's own employee record otherwise.
func resolveEmployeeID(principal user.Principal, filtered *string) (string, error) {
	if filtered != nil && *filtered != "" {
		if !principal.IsPrivileged() && !principal.IsSelf(*filtered) {
			return "", timesheet.Deny(timesheet.DenyRoleInsufficient)
		}
		return *filtered, nil
	}
	if principal.EmployeeID == "" {
		return "", validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required for principals without an employee record",
		}}
	}
	return principal.EmployeeID, nil
}

func principalFromContext(ctx context.Context) (user.Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return user.FromClaims(claims)
}

func localDayStart(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).UTC()
}
