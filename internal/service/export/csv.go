package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/export"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/metrics"
)

var csvHeader = []string{
	"Employee", "Date", "Location", "Clock In", "Clock Out",
	"Work Duration", "Break Duration", "Breaks",
}

// ExportCSV implements export.ExportService.
func (s *ExportServiceImpl) ExportCSV(ctx context.Context, filter export.Filter) ([]byte, string, error) {
	doc, err := s.BuildDocument(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	metrics.RecordExport("csv")

	payload, err := renderCSV(doc)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("timesheet_%s_%s.csv", doc.Summary.PeriodStart, doc.Summary.PeriodEnd)
	return payload, filename, nil
}

func renderCSV(doc export.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{csvHeader}
	for _, row := range doc.Rows {
		records = append(records, []string{
			row.EmployeeName,
			row.Date,
			row.LocationName,
			row.ClockIn,
			row.ClockOut,
			row.WorkDuration,
			row.BreakDuration,
			strconv.Itoa(row.BreakCount),
		})
	}

	records = append(records,
		[]string{},
		[]string{"Summary"},
		[]string{"Employee", doc.Summary.EmployeeName},
		[]string{"Period", doc.Summary.PeriodStart + " - " + doc.Summary.PeriodEnd},
		[]string{"Total Hours", doc.Summary.TotalHours},
		[]string{"Break Hours", doc.Summary.BreakHours},
		[]string{"Overtime Hours", doc.Summary.OvertimeHours},
		[]string{"Status", doc.Summary.Status},
	)

	for _, record := range records {
		if len(record) == 0 {
			// Blank separator line between the table and the summary.
			record = []string{""}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
