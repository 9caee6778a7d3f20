package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// filterFromQuery reads the list filter from query parameters.
func filterFromQuery(r *http.Request) attendance.ListFilter {
	var filter attendance.ListFilter

	query := r.URL.Query()
	assign := func(dst **string, key string) {
		if value := query.Get(key); value != "" {
			*dst = &value
		}
	}

	assign(&filter.EmployeeID, "employee_id")
	assign(&filter.Date, "date")
	assign(&filter.StartDate, "start_date")
	assign(&filter.EndDate, "end_date")
	assign(&filter.Status, "status")

	return filter
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), actor)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), actor)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", record)
}

// GetToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	today, err := h.attendanceService.GetToday(r.Context(), actor)
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}

// GetRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	record, err := h.attendanceService.GetRecord(r.Context(), actor, employeeID, date)
	if err != nil {
		slog.Error("GetRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListMy implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListMyRecords(r.Context(), actor, filterFromQuery(r))
	if err != nil {
		slog.Error("ListMy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListRecords(r.Context(), actor, filterFromQuery(r))
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
