package timesheet

import (
	"sort"
	"time"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
)

// AggregateDay pairs one employee-day's punch events into a derived
// summary. The function is pure and total: it never fails, always
// returning a best-effort aggregate plus advisory anomaly flags for the
// caller to log.
//
// Pairing rules, applied in a single pass with no lookahead:
//   - the last clock_in before a clock_out wins (last-write-wins, not
//     an error);
//   - a clock_out without an open clock_in is recorded for display but
//     contributes zero minutes and flags orphan_clock_out;
//   - completed breaks whose interval falls inside the raw clock
//     interval are subtracted from it;
//   - an unmatched break_end is ignored;
//   - negative durations are clamped to zero with an anomaly flag.
func AggregateDay(employeeID string, date time.Time, events []punch.PunchEvent) punch.DayAggregate {
	agg := punch.DayAggregate{
		EmployeeID: employeeID,
		Date:       date,
	}

	var openClockIn *time.Time
	var openBreakStart *time.Time

	for i := range events {
		ev := events[i]
		switch ev.Type {
		case punch.EntryClockIn:
			t := ev.Timestamp
			openClockIn = &t
			agg.ClockIn = &t
			agg.LocationID = ev.LocationID

		case punch.EntryClockOut:
			t := ev.Timestamp
			agg.ClockOut = &t
			if openClockIn == nil {
				agg.Anomalies = append(agg.Anomalies, punch.AnomalyOrphanClockOut)
				continue
			}
			raw := t.Sub(*openClockIn)
			if raw < 0 {
				agg.Anomalies = append(agg.Anomalies, punch.AnomalyNegativeInterval)
				openClockIn = nil
				continue
			}
			worked := int(raw/time.Minute) - breakMinutesWithin(agg.BreakIntervals, *openClockIn, t)
			if worked < 0 {
				worked = 0
				agg.Anomalies = append(agg.Anomalies, punch.AnomalyNegativeInterval)
			}
			agg.WorkMinutes += worked
			openClockIn = nil

		case punch.EntryBreakStart:
			t := ev.Timestamp
			openBreakStart = &t

		case punch.EntryBreakEnd:
			// An unmatched break_end contributes nothing and is not
			// an anomaly.
			if openBreakStart == nil {
				continue
			}
			t := ev.Timestamp
			if t.Before(*openBreakStart) {
				agg.Anomalies = append(agg.Anomalies, punch.AnomalyNegativeInterval)
				openBreakStart = nil
				continue
			}
			interval := punch.BreakInterval{Start: *openBreakStart, End: t}
			agg.BreakIntervals = append(agg.BreakIntervals, interval)
			agg.BreakMinutes += interval.Minutes()
			openBreakStart = nil
		}
	}

	return agg
}

// breakMinutesWithin sums the minutes of breaks fully contained in
// [start, end].
func breakMinutesWithin(breaks []punch.BreakInterval, start, end time.Time) int {
	total := 0
	for _, b := range breaks {
		if !b.Start.Before(start) && !b.End.After(end) {
			total += b.Minutes()
		}
	}
	return total
}

// DayBucket is one organization-local calendar day's worth of events.
type DayBucket struct {
	Date   time.Time // midnight in the organization's timezone
	Events []punch.PunchEvent
}

// GroupByLocalDay buckets a UTC event stream into organization-local
// calendar days, ordered chronologically. Events are sorted by
// timestamp first so aggregation is deterministic regardless of input
// order.
func GroupByLocalDay(events []punch.PunchEvent, loc *time.Location) []DayBucket {
	sorted := make([]punch.PunchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var buckets []DayBucket
	index := make(map[string]int)
	for _, ev := range sorted {
		local := ev.Timestamp.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		key := day.Format("2006-01-02")
		if i, ok := index[key]; ok {
			buckets[i].Events = append(buckets[i].Events, ev)
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, DayBucket{Date: day, Events: []punch.PunchEvent{ev}})
	}

	return buckets
}
