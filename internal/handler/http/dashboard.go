package http

import (
	"log/slog"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/domain/dashboard"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetManagerDashboard(w http.ResponseWriter, r *http.Request)
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetManagerDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetManagerDashboard(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dashboardResponse, err := h.dashboardService.GetManagerDashboard(r.Context(), actor)
	if err != nil {
		slog.Error("GetManagerDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboardResponse)
}

// GetEmployeeDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := r.URL.Query().Get("month")

	dashboardResponse, err := h.dashboardService.GetEmployeeDashboard(r.Context(), actor, month)
	if err != nil {
		slog.Error("GetEmployeeDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboardResponse)
}
