package main

import (
	"fmt"
	"net/http"

	"github.com/shiftline-hq/timetrack-backend-go/internal/config"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/organization"
	appHTTP "github.com/shiftline-hq/timetrack-backend-go/internal/handler/http"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/database"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/jwt"
	"github.com/shiftline-hq/timetrack-backend-go/internal/repository/postgresql"
	exportService "github.com/shiftline-hq/timetrack-backend-go/internal/service/export"
	timesheetService "github.com/shiftline-hq/timetrack-backend-go/internal/service/timesheet"
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

	organizationRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	defaults := organization.Settings{
		AllowSelfTimeEdit:        cfg.Timesheet.AllowSelfTimeEdit,
		OvertimeThresholdMinutes: cfg.Timesheet.OvertimeThresholdMinutes,
	}

	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		timesheetRepo,
		punchRepo,
		employeeRepo,
		organizationRepo,
		defaults,
	)
	exportSvc := exportService.NewExportService(
		punchRepo,
		timesheetRepo,
		employeeRepo,
		organizationRepo,
		locationRepo,
		defaults,
	)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		exportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
