package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/workpulse/attendance-backend-go/internal/domain/report"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReport implements ReportHandler. The rendered CSV goes out as
// a file download, not wrapped in the JSON envelope.
func (h *ReportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := report.AttendanceReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	attendanceReport, err := h.reportService.GenerateAttendanceReport(r.Context(), actor, req)
	if err != nil {
		slog.Error("GetAttendanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attendanceReport.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(attendanceReport.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(attendanceReport.Content); err != nil {
		slog.Error("GetAttendanceReport write error", "error", err)
	}
}
