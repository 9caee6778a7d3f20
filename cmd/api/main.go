package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/config"
	appHTTP "github.com/workpulse/attendance-backend-go/internal/handler/http"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse/attendance-backend-go/internal/pkg/jwt"
	"github.com/workpulse/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/attendance-backend-go/internal/service/attendance"
	authService "github.com/workpulse/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/workpulse/attendance-backend-go/internal/service/dashboard"
	profileService "github.com/workpulse/attendance-backend-go/internal/service/profile"
	reportService "github.com/workpulse/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	loc := cfg.Location()

	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(profileRepo, JWTService)
	profileSvc := profileService.NewProfileService(profileRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, loc)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, profileRepo, loc)
	reportSvc := reportService.NewReportService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		profileHandler,
		attendanceHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
