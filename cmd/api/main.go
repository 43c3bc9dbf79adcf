package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kentzie123/LJA-System-Server/internal/config"
	"github.com/kentzie123/LJA-System-Server/internal/domain/employee"
	appHTTP "github.com/kentzie123/LJA-System-Server/internal/handler/http"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/jwt"
	"github.com/kentzie123/LJA-System-Server/internal/repository/postgresql"
	payrollService "github.com/kentzie123/LJA-System-Server/internal/service/payroll"
	"github.com/kentzie123/LJA-System-Server/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	payrollRepo := postgresql.NewPayrollRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	allowanceRepo := postgresql.NewAllowanceRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	payrollSvc := payrollService.NewPayrollService(
		txManager,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		overtimeRepo,
		allowanceRepo,
		deductionRepo,
		employee.EligibilityFromRoleIDs(cfg.Payroll.ExcludedRoleIDs),
	)
	reportSvc := report.NewReportService(payrollSvc)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, reportSvc, jwtService)

	router := appHTTP.NewRouter(cfg.App.Env, jwtService, payrollHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
