package dashboard

import (
	"context"

	"github.com/workpulse/attendance-backend-go/internal/pkg/policy"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetManagerDashboard returns the combined manager view for today,
	// fetching the pieces concurrently
	GetManagerDashboard(ctx context.Context, actor policy.Actor) (*ManagerDashboardResponse, error)

	// GetEmployeeDashboard returns the actor's own monthly summary and
	// calendar. Month is "YYYY-MM"; empty means the current month.
	GetEmployeeDashboard(ctx context.Context, actor policy.Actor, month string) (*EmployeeDashboardResponse, error)
}
