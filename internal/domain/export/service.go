package export

import "context"

// ExportService renders the aggregated period into its two
// representations. Both are derived from one assembled Document so the
// numbers are identical.
type ExportService interface {
	// BuildDocument assembles per-day rows and the summary block for
	// the filtered employee-period.
	BuildDocument(ctx context.Context, filter Filter) (Document, error)

	// ExportCSV renders the document as delimited text. Returns the
	// payload and a suggested filename.
	ExportCSV(ctx context.Context, filter Filter) ([]byte, string, error)

	// ExportWorkbook renders the document as a spreadsheet workbook.
	ExportWorkbook(ctx context.Context, filter Filter) ([]byte, string, error)
}
