package timesheet

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/organization"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/timesheet"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/user"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/database"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/metrics"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/validator"
	"github.com/shiftline-hq/timetrack-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	timesheet.TimesheetRepository
	punch.PunchRepository
	employee.EmployeeRepository
	organization.OrganizationRepository
	defaults organization.Settings

	// runInTx wraps multi-event corrections in one database
	// transaction.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	organizationRepo organization.OrganizationRepository,
	defaults organization.Settings,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		TimesheetRepository:    timesheetRepo,
		PunchRepository:        punchRepo,
		EmployeeRepository:     employeeRepo,
		OrganizationRepository: organizationRepo,
		defaults:               defaults,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, id, principal.OrganizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if err := timesheet.CanView(principal, ts.EmployeeID); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	days, summary, err := s.aggregatePeriod(ctx, ts, org)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return mapTimesheetToResponse(ts, summary, days, org.Location()), nil
}

// ListTimesheets implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.ListTimesheetsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	principal, err := principalFromContext(ctx)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	// Non-privileged principals only ever see their own timesheets.
	if !principal.IsPrivileged() {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && !principal.IsSelf(*filter.EmployeeID) {
			return timesheet.ListTimesheetsResponse{}, timesheet.Deny(timesheet.DenyRoleInsufficient)
		}
		if principal.EmployeeID == "" {
			return timesheet.ListTimesheetsResponse{}, timesheet.Deny(timesheet.DenyRoleInsufficient)
		}
		own := principal.EmployeeID
		filter.EmployeeID = &own
	}

	sheets, total, err := s.TimesheetRepository.List(ctx, filter, principal.OrganizationID)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(sheets))
	for _, ts := range sheets {
		_, summary, err := s.aggregatePeriod(ctx, ts, org)
		if err != nil {
			return timesheet.ListTimesheetsResponse{}, err
		}
		responses = append(responses, mapTimesheetToResponse(ts, summary, nil, org.Location()))
	}

	return timesheet.ListTimesheetsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Timesheets: responses,
	}, nil
}

// GetDayEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetDayEntry(ctx context.Context, key punch.EntryKey) (punch.DayAggregateResponse, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	if err := timesheet.CanView(principal, key.EmployeeID); err != nil {
		return punch.DayAggregateResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, key.EmployeeID, principal.OrganizationID); err != nil {
		return punch.DayAggregateResponse{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	agg, err := s.aggregateDay(ctx, key, org)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	return mapDayAggregateToResponse(agg, org.Location()), nil
}

// EditPunchEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) EditPunchEntry(ctx context.Context, key punch.EntryKey, req punch.EditPunchRequest) (punch.DayAggregateResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.DayAggregateResponse{}, err
	}

	principal, err := principalFromContext(ctx)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, key.EmployeeID, principal.OrganizationID)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}
	settings := org.ResolveSettings(s.defaults)

	ts, err := s.TimesheetRepository.FindCovering(ctx, key.EmployeeID, key.Date, principal.OrganizationID)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	allowSelf := emp.SelfTimeEditAllowed(settings.AllowSelfTimeEdit)
	if err := timesheet.CanEditPunches(principal, key.EmployeeID, ts.Status, allowSelf); err != nil {
		return punch.DayAggregateResponse{}, err
	}

	loc := org.Location()
	dayStart := localDayStart(key.Date, loc)
	dayEnd := localDayStart(key.Date.AddDate(0, 0, 1), loc)

	err = s.runInTx(ctx, func(txCtx context.Context) error {
		for _, field := range req.Fields() {
			timestamp := anchorClockValue(field.Value, key.Date, loc)

			existing, err := s.PunchRepository.FindByTypeAndDay(txCtx, key.EmployeeID, field.Type, dayStart, dayEnd, principal.OrganizationID)
			if err != nil {
				return err
			}

			if existing == nil {
				_, err = s.PunchRepository.Create(txCtx, punch.PunchEvent{
					ID:             uuid.NewString(),
					EmployeeID:     key.EmployeeID,
					OrganizationID: principal.OrganizationID,
					Type:           field.Type,
					Timestamp:      timestamp,
					IsManual:       true,
					Note:           req.Note,
				})
				if err != nil {
					return err
				}
				continue
			}

			if err := s.PunchRepository.UpdateTimestamp(txCtx, existing.ID, timestamp, req.Note); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	agg, err := s.aggregateDay(ctx, key, org)
	if err != nil {
		return punch.DayAggregateResponse{}, err
	}

	return mapDayAggregateToResponse(agg, loc), nil
}

// ChangeStatus implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ChangeStatus(ctx context.Context, req timesheet.ChangeStatusRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	principal, err := principalFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, req.ID, principal.OrganizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	target := timesheet.Status(strings.ToLower(req.Status))
	if !timesheet.CanTransition(ts.Status, target) {
		return timesheet.TimesheetResponse{}, fmt.Errorf("%w: %s -> %s", timesheet.ErrInvalidStatusTransition, ts.Status, target)
	}

	// Submission is the employee's own move; review decisions require a
	// privileged role.
	if target == timesheet.StatusPending {
		if err := timesheet.CanSubmit(principal, ts.EmployeeID); err != nil {
			return timesheet.TimesheetResponse{}, err
		}
	} else {
		if err := timesheet.CanReview(principal); err != nil {
			return timesheet.TimesheetResponse{}, err
		}
	}

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	days, summary, err := s.aggregatePeriod(ctx, ts, org)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts.Status = target
	if target.IsTerminal() {
		now := time.Now().UTC()
		ts.ReviewedBy = &principal.UserID
		ts.ReviewedAt = &now
		ts.ReviewComment = req.ReviewComment
	}

	// Refresh the advisory cache alongside the status change. Reads
	// still recompute; the cache only feeds reporting queries.
	totalHours := round2(summary.TotalHours())
	breakHours := round2(summary.BreakHours())
	overtimeHours := round2(summary.OvertimeHours())
	ts.TotalHours = &totalHours
	ts.BreakHours = &breakHours
	ts.OvertimeHours = &overtimeHours

	if err := s.TimesheetRepository.UpdateReview(ctx, ts); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return mapTimesheetToResponse(ts, summary, days, org.Location()), nil
}

// BulkChangeStatus implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) BulkChangeStatus(ctx context.Context, req timesheet.BulkChangeStatusRequest) (timesheet.BulkChangeStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.BulkChangeStatusResponse{}, err
	}

	resp := timesheet.BulkChangeStatusResponse{
		Items: make([]timesheet.BulkChangeStatusItem, 0, len(req.IDs)),
	}

	for _, id := range req.IDs {
		item := timesheet.BulkChangeStatusItem{ID: id, Success: true}

		_, err := s.ChangeStatus(ctx, timesheet.ChangeStatusRequest{
			ID:            id,
			Status:        req.Status,
			ReviewComment: req.ReviewComment,
		})
		if err != nil {
			msg := err.Error()
			item.Success = false
			item.Error = &msg
			resp.Failed++
		} else {
			resp.Succeeded++
		}

		resp.Items = append(resp.Items, item)
	}

	return resp, nil
}

// UpdateTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) UpdateTimesheet(ctx context.Context, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	principal, err := principalFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, req.ID, principal.OrganizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if err := timesheet.CanModifyPeriod(principal, ts.EmployeeID, ts.Status); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	start, end := ts.PeriodStart, ts.PeriodEnd
	if req.PeriodStart != nil {
		start, _ = validator.IsValidDate(*req.PeriodStart)
	}
	if req.PeriodEnd != nil {
		end, _ = validator.IsValidDate(*req.PeriodEnd)
	}
	if start.After(end) {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidPeriod
	}

	if err := s.TimesheetRepository.UpdatePeriod(ctx, ts.ID, start, end, principal.OrganizationID); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	ts.PeriodStart, ts.PeriodEnd = start, end

	org, err := s.OrganizationRepository.GetByID(ctx, principal.OrganizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	days, summary, err := s.aggregatePeriod(ctx, ts, org)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return mapTimesheetToResponse(ts, summary, days, org.Location()), nil
}

// DeleteTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteTimesheet(ctx context.Context, id string) error {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, id, principal.OrganizationID)
	if err != nil {
		return err
	}

	if err := timesheet.CanModifyPeriod(principal, ts.EmployeeID, ts.Status); err != nil {
		return err
	}

	return s.TimesheetRepository.Delete(ctx, id, principal.OrganizationID)
}

// aggregatePeriod recomputes one timesheet's day aggregates and period
// summary strictly from stored punch events.
func (s *TimesheetServiceImpl) aggregatePeriod(ctx context.Context, ts timesheet.Timesheet, org organization.Organization) ([]punch.DayAggregate, timesheet.PeriodSummary, error) {
	loc := org.Location()
	settings := org.ResolveSettings(s.defaults)

	fromUTC := localDayStart(ts.PeriodStart, loc)
	toUTC := localDayStart(ts.PeriodEnd.AddDate(0, 0, 1), loc)

	events, err := s.PunchRepository.ListByEmployeeRange(ctx, ts.EmployeeID, fromUTC, toUTC, ts.OrganizationID)
	if err != nil {
		return nil, timesheet.PeriodSummary{}, err
	}

	var days []punch.DayAggregate
	for _, bucket := range GroupByLocalDay(events, loc) {
		agg := AggregateDay(ts.EmployeeID, bucket.Date, bucket.Events)
		recordAnomalies(agg)
		days = append(days, agg)
	}

	return days, AggregatePeriod(days, settings.OvertimeThresholdMinutes), nil
}

// aggregateDay recomputes one employee-day from stored punch events.
func (s *TimesheetServiceImpl) aggregateDay(ctx context.Context, key punch.EntryKey, org organization.Organization) (punch.DayAggregate, error) {
	loc := org.Location()
	dayStart := localDayStart(key.Date, loc)
	dayEnd := localDayStart(key.Date.AddDate(0, 0, 1), loc)

	events, err := s.PunchRepository.ListByEmployeeRange(ctx, key.EmployeeID, dayStart, dayEnd, org.ID)
	if err != nil {
		return punch.DayAggregate{}, err
	}

	agg := AggregateDay(key.EmployeeID, key.Date, events)
	recordAnomalies(agg)
	return agg, nil
}

func recordAnomalies(agg punch.DayAggregate) {
	for _, code := range agg.Anomalies {
		metrics.RecordAnomaly(string(code))
	}
}

func principalFromContext(ctx context.Context) (user.Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return user.FromClaims(claims)
}

// localDayStart returns the UTC instant at which the given calendar date
// begins in loc.
func localDayStart(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).UTC()
}

// anchorClockValue turns a correction value into a UTC instant. A bare
// time of day is anchored to the entry key's calendar day in the
// organization's timezone; a full datetime carries its own date.
func anchorClockValue(value string, day time.Time, loc *time.Location) time.Time {
	parsed, _ := validator.ParseClockValue(value)
	if validator.HasDateComponent(value) {
		day = parsed
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc).UTC()
}

func mapTimesheetToResponse(ts timesheet.Timesheet, summary timesheet.PeriodSummary, days []punch.DayAggregate, loc *time.Location) timesheet.TimesheetResponse {
	resp := timesheet.TimesheetResponse{
		ID:            ts.ID,
		EmployeeID:    ts.EmployeeID,
		PeriodStart:   ts.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     ts.PeriodEnd.Format("2006-01-02"),
		Status:        string(ts.Status),
		ReviewedBy:    ts.ReviewedBy,
		ReviewComment: ts.ReviewComment,
		TotalHours:    round2(summary.TotalHours()),
		BreakHours:    round2(summary.BreakHours()),
		OvertimeHours: round2(summary.OvertimeHours()),
	}

	if ts.EmployeeName != nil {
		resp.EmployeeName = *ts.EmployeeName
	}
	if ts.ReviewedAt != nil {
		reviewedAt := ts.ReviewedAt.In(loc).Format("2006-01-02 15:04:05")
		resp.ReviewedAt = &reviewedAt
	}

	for _, day := range days {
		resp.Days = append(resp.Days, mapDayAggregateToResponse(day, loc))
	}

	return resp
}

func mapDayAggregateToResponse(agg punch.DayAggregate, loc *time.Location) punch.DayAggregateResponse {
	key := punch.EntryKey{EmployeeID: agg.EmployeeID, Date: agg.Date}

	resp := punch.DayAggregateResponse{
		EntryKey:     key.String(),
		EmployeeID:   agg.EmployeeID,
		Date:         agg.Date.Format("2006-01-02"),
		Breaks:       make([]punch.BreakIntervalResponse, 0, len(agg.BreakIntervals)),
		WorkMinutes:  agg.WorkMinutes,
		BreakMinutes: agg.BreakMinutes,
		LocationID:   agg.LocationID,
	}

	if agg.ClockIn != nil {
		v := agg.ClockIn.In(loc).Format("2006-01-02 15:04:05")
		resp.ClockInTime = &v
	}
	if agg.ClockOut != nil {
		v := agg.ClockOut.In(loc).Format("2006-01-02 15:04:05")
		resp.ClockOutTime = &v
	}

	for _, b := range agg.BreakIntervals {
		resp.Breaks = append(resp.Breaks, punch.BreakIntervalResponse{
			Start: b.Start.In(loc).Format("2006-01-02 15:04:05"),
			End:   b.End.In(loc).Format("2006-01-02 15:04:05"),
		})
	}

	for _, a := range agg.Anomalies {
		resp.Anomalies = append(resp.Anomalies, string(a))
	}

	return resp
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
