package http

import (
	"net/http"

	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/export"
	"github.com/shiftline-hq/timetrack-backend-go/internal/handler/http/response"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportDocument(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

func filterFromQuery(r *http.Request) export.Filter {
	query := r.URL.Query()
	filter := export.Filter{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("location_id"); v != "" {
		filter.LocationID = &v
	}
	return filter
}

// ExportCSV implements ExportHandler. The CSV downloads as an
// attachment.
func (h *exportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	payload, filename, err := h.exportService.ExportCSV(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, payload, filename, "text/csv", "attachment")
}

// ExportDocument implements ExportHandler. The workbook renders inline
// so browsers can preview it.
func (h *exportHandlerImpl) ExportDocument(w http.ResponseWriter, r *http.Request) {
	payload, filename, err := h.exportService.ExportWorkbook(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, payload, filename, workbookContentType, "inline")
}
