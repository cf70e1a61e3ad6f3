package export

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/export"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/location"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/organization"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type fakePunchRepo struct {
	events []punch.PunchEvent
}

func (f *fakePunchRepo) ListByEmployeeRange(_ context.Context, employeeID string, fromUTC, toUTC time.Time, organizationID string) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, ev := range f.events {
		if ev.EmployeeID != employeeID || ev.OrganizationID != organizationID {
			continue
		}
		if ev.Timestamp.Before(fromUTC) || !ev.Timestamp.Before(toUTC) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakePunchRepo) FindByTypeAndDay(_ context.Context, _ string, _ punch.EntryType, _, _ time.Time, _ string) (*punch.PunchEvent, error) {
	return nil, nil
}

func (f *fakePunchRepo) Create(_ context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakePunchRepo) UpdateTimestamp(_ context.Context, _ string, _ time.Time, _ *string) error {
	return punch.ErrPunchNotFound
}

type fakeTimesheetRepo struct {
	sheets []timesheet.Timesheet
}

func (f *fakeTimesheetRepo) GetByID(_ context.Context, _ string, _ string) (timesheet.Timesheet, error) {
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (f *fakeTimesheetRepo) FindCovering(_ context.Context, _ string, _ time.Time, _ string) (timesheet.Timesheet, error) {
	return timesheet.Timesheet{}, timesheet.ErrNoCoveringTimesheet
}

func (f *fakeTimesheetRepo) ListOverlapping(_ context.Context, employeeID string, start, end time.Time, _ string) ([]timesheet.Timesheet, error) {
	var out []timesheet.Timesheet
	for _, ts := range f.sheets {
		if ts.EmployeeID == employeeID && !ts.PeriodStart.After(end) && !ts.PeriodEnd.Before(start) {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (f *fakeTimesheetRepo) List(_ context.Context, _ timesheet.TimesheetFilter, _ string) ([]timesheet.Timesheet, int64, error) {
	return nil, 0, nil
}

func (f *fakeTimesheetRepo) UpdateReview(_ context.Context, _ timesheet.Timesheet) error { return nil }

func (f *fakeTimesheetRepo) UpdatePeriod(_ context.Context, _ string, _, _ time.Time, _ string) error {
	return nil
}

func (f *fakeTimesheetRepo) Delete(_ context.Context, _ string, _ string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, organizationID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.OrganizationID != organizationID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeOrganizationRepo struct {
	org organization.Organization
}

func (f *fakeOrganizationRepo) GetByID(_ context.Context, id string) (organization.Organization, error) {
	if f.org.ID != id {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return f.org, nil
}

type fakeLocationRepo struct {
	names map[string]string
}

func (f *fakeLocationRepo) GetByID(_ context.Context, _ string, _ string) (location.WorkLocation, error) {
	return location.WorkLocation{}, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) NamesByIDs(_ context.Context, ids []string, _ string) (map[string]string, error) {
	out := make(map[string]string)
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

// ---- fixture ----

func newService(t *testing.T, punches *fakePunchRepo, sheets *fakeTimesheetRepo) *ExportServiceImpl {
	t.Helper()

	return &ExportServiceImpl{
		PunchRepository:     punches,
		TimesheetRepository: sheets,
		EmployeeRepository: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp_001": {ID: "emp_001", OrganizationID: "org1", FullName: "Ayu Lestari"},
		}},
		OrganizationRepository: &fakeOrganizationRepo{org: organization.Organization{
			ID:       "org1",
			Name:     "Shiftline",
			Timezone: "UTC",
		}},
		LocationRepository: &fakeLocationRepo{names: map[string]string{
			"loc1": "Head Office",
		}},
		defaults: organization.DefaultSettings(),
	}
}

func authedContext(t *testing.T, userID, employeeID, role string) context.Context {
	t.Helper()

	claims := map[string]interface{}{
		"user_id":         userID,
		"organization_id": "org1",
		"role":            role,
		"type":            "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func workDay(employeeID, date string, locationID *string) []punch.PunchEvent {
	clockIn, _ := time.Parse("2006-01-02 15:04", date+" 09:00")
	return []punch.PunchEvent{
		{ID: date + "-in", EmployeeID: employeeID, OrganizationID: "org1", Type: punch.EntryClockIn, Timestamp: clockIn, LocationID: locationID},
		{ID: date + "-bs", EmployeeID: employeeID, OrganizationID: "org1", Type: punch.EntryBreakStart, Timestamp: clockIn.Add(3 * time.Hour)},
		{ID: date + "-be", EmployeeID: employeeID, OrganizationID: "org1", Type: punch.EntryBreakEnd, Timestamp: clockIn.Add(3*time.Hour + 30*time.Minute)},
		{ID: date + "-out", EmployeeID: employeeID, OrganizationID: "org1", Type: punch.EntryClockOut, Timestamp: clockIn.Add(8 * time.Hour)},
	}
}

// ---- tests ----

func TestBuildDocument_RowsSumToSummary(t *testing.T) {
	punches := &fakePunchRepo{}
	for _, date := range []string{"2025-01-13", "2025-01-14", "2025-01-15"} {
		punches.events = append(punches.events, workDay("emp_001", date, strPtr("loc1"))...)
	}
	sheets := &fakeTimesheetRepo{sheets: []timesheet.Timesheet{{
		ID:             "ts1",
		EmployeeID:     "emp_001",
		OrganizationID: "org1",
		PeriodStart:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:         timesheet.StatusApproved,
	}}}
	svc := newService(t, punches, sheets)

	ctx := authedContext(t, "user-emp", "emp_001", "employee")
	doc, err := svc.BuildDocument(ctx, export.Filter{StartDate: "2025-01-13", EndDate: "2025-01-15"})
	require.NoError(t, err)

	require.Len(t, doc.Rows, 3)
	totalMinutes, breakMinutes := 0, 0
	for _, row := range doc.Rows {
		assert.Equal(t, "Ayu Lestari", row.EmployeeName)
		assert.Equal(t, "Head Office", row.LocationName)
		assert.Equal(t, "09:00", row.ClockIn)
		assert.Equal(t, "17:00", row.ClockOut)
		assert.Equal(t, 1, row.BreakCount)
		totalMinutes += row.WorkMinutes
		breakMinutes += row.BreakMinutes
	}

	// The summary is the sum of the rows, formatted with the same rule.
	assert.Equal(t, FormatDuration(totalMinutes), doc.Summary.TotalHours)
	assert.Equal(t, FormatDuration(breakMinutes), doc.Summary.BreakHours)
	assert.Equal(t, "0h", doc.Summary.OvertimeHours)
	assert.Equal(t, "approved", doc.Summary.Status)
}

func TestBuildDocument_OvertimeSplit(t *testing.T) {
	// Six 7.5h days = 2700 worked minutes against the 2400 default.
	punches := &fakePunchRepo{}
	for day := 13; day <= 18; day++ {
		date := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		punches.events = append(punches.events, workDay("emp_001", date, nil)...)
	}
	svc := newService(t, punches, &fakeTimesheetRepo{})

	ctx := authedContext(t, "user-emp", "emp_001", "employee")
	doc, err := svc.BuildDocument(ctx, export.Filter{StartDate: "2025-01-13", EndDate: "2025-01-18"})
	require.NoError(t, err)

	assert.Equal(t, "45h", doc.Summary.TotalHours)
	assert.Equal(t, "5h", doc.Summary.OvertimeHours)
	assert.Equal(t, "N/A", doc.Summary.Status, "no timesheet overlaps the range")
}

func TestBuildDocument_DateRangeRequired(t *testing.T) {
	svc := newService(t, &fakePunchRepo{}, &fakeTimesheetRepo{})
	ctx := authedContext(t, "user-emp", "emp_001", "employee")

	_, err := svc.BuildDocument(ctx, export.Filter{})
	assert.ErrorIs(t, err, export.ErrDateRangeRequired)
}

func TestBuildDocument_CrossEmployeeRequiresPrivilege(t *testing.T) {
	svc := newService(t, &fakePunchRepo{}, &fakeTimesheetRepo{})
	filter := export.Filter{StartDate: "2025-01-13", EndDate: "2025-01-15", EmployeeID: strPtr("emp_001")}

	// A manager may export any employee in the organization.
	_, err := svc.BuildDocument(authedContext(t, "user-mgr", "", "manager"), filter)
	require.NoError(t, err)

	// Another employee may not.
	_, err = svc.BuildDocument(authedContext(t, "user-emp", "emp_002", "employee"), filter)
	var authErr *timesheet.AuthorizationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, timesheet.DenyRoleInsufficient, authErr.Reason)
}

func TestBuildDocument_LocationFilter(t *testing.T) {
	punches := &fakePunchRepo{}
	punches.events = append(punches.events, workDay("emp_001", "2025-01-13", strPtr("loc1"))...)
	punches.events = append(punches.events, workDay("emp_001", "2025-01-14", strPtr("loc2"))...)
	punches.events = append(punches.events, workDay("emp_001", "2025-01-15", nil)...)
	svc := newService(t, punches, &fakeTimesheetRepo{})

	ctx := authedContext(t, "user-emp", "emp_001", "employee")
	doc, err := svc.BuildDocument(ctx, export.Filter{
		StartDate:  "2025-01-13",
		EndDate:    "2025-01-15",
		LocationID: strPtr("loc1"),
	})
	require.NoError(t, err)

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "2025-01-13", doc.Rows[0].Date)
	assert.Equal(t, FormatDuration(doc.Rows[0].WorkMinutes), doc.Summary.TotalHours)
}
