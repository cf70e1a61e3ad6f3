package timesheet

import (
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/timesheet"
)

// AggregatePeriod sums day aggregates into the period read-model. The
// overtime threshold is one flat cutoff applied to the whole period,
// not per calendar week.
func AggregatePeriod(days []punch.DayAggregate, thresholdMinutes int) timesheet.PeriodSummary {
	summary := timesheet.PeriodSummary{}
	for _, day := range days {
		summary.TotalWorkMinutes += day.WorkMinutes
		summary.TotalBreakMinutes += day.BreakMinutes
	}

	summary.RegularMinutes = summary.TotalWorkMinutes
	if thresholdMinutes > 0 && summary.TotalWorkMinutes > thresholdMinutes {
		summary.RegularMinutes = thresholdMinutes
		summary.OvertimeMinutes = summary.TotalWorkMinutes - thresholdMinutes
	}

	return summary
}
