package export

import (
	"context"
	"fmt"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/export"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/metrics"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Timesheet"

// ExportWorkbook implements export.ExportService. The workbook carries
// the same rows and summary values as the CSV form.
func (s *ExportServiceImpl) ExportWorkbook(ctx context.Context, filter export.Filter) ([]byte, string, error) {
	doc, err := s.BuildDocument(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	metrics.RecordExport("workbook")

	payload, err := renderWorkbook(doc)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("timesheet_%s_%s.xlsx", doc.Summary.PeriodStart, doc.Summary.PeriodEnd)
	return payload, filename, nil
}

func renderWorkbook(doc export.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRecord(f, 1, csvHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "H1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	rowNum := 2
	if len(doc.Rows) == 0 {
		if err := writeRecord(f, rowNum, []string{"No entries for the selected period"}); err != nil {
			return nil, err
		}
		rowNum++
	}
	for _, row := range doc.Rows {
		record := []interface{}{
			row.EmployeeName, row.Date, row.LocationName,
			row.ClockIn, row.ClockOut,
			row.WorkDuration, row.BreakDuration, row.BreakCount,
		}
		if err := writeCells(f, rowNum, record); err != nil {
			return nil, err
		}
		rowNum++
	}

	rowNum++ // blank separator line
	summaryRecords := [][]string{
		{"Summary"},
		{"Employee", doc.Summary.EmployeeName},
		{"Period", doc.Summary.PeriodStart + " - " + doc.Summary.PeriodEnd},
		{"Total Hours", doc.Summary.TotalHours},
		{"Break Hours", doc.Summary.BreakHours},
		{"Overtime Hours", doc.Summary.OvertimeHours},
		{"Status", doc.Summary.Status},
	}
	for _, record := range summaryRecords {
		if err := writeRecord(f, rowNum, record); err != nil {
			return nil, err
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRecord(f *excelize.File, rowNum int, record []string) error {
	cells := make([]interface{}, len(record))
	for i, v := range record {
		cells[i] = v
	}
	return writeCells(f, rowNum, cells)
}

func writeCells(f *excelize.File, rowNum int, record []interface{}) error {
	for i, value := range record {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
