package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/erphq/hrm-backend-go/internal/config"
	appHTTP "github.com/erphq/hrm-backend-go/internal/handler/http"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
	"github.com/erphq/hrm-backend-go/internal/repository/postgresql"
	announcementService "github.com/erphq/hrm-backend-go/internal/service/announcement"
	dependentService "github.com/erphq/hrm-backend-go/internal/service/dependent"
	educationService "github.com/erphq/hrm-backend-go/internal/service/education"
	employeeService "github.com/erphq/hrm-backend-go/internal/service/employee"
	experienceService "github.com/erphq/hrm-backend-go/internal/service/experience"
	historyService "github.com/erphq/hrm-backend-go/internal/service/history"
	leaveService "github.com/erphq/hrm-backend-go/internal/service/leave"
	noteService "github.com/erphq/hrm-backend-go/internal/service/note"
	performanceService "github.com/erphq/hrm-backend-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	experienceRepo := postgresql.NewExperienceRepository(db)
	educationRepo := postgresql.NewEducationRepository(db)
	dependentRepo := postgresql.NewDependentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	noteRepo := postgresql.NewNoteRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	historyRepo := postgresql.NewHistoryRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, designationRepo)
	experienceSvc := experienceService.NewExperienceService(experienceRepo, employeeRepo)
	educationSvc := educationService.NewEducationService(educationRepo, employeeRepo)
	dependentSvc := dependentService.NewDependentService(dependentRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	noteSvc := noteService.NewNoteService(noteRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	historySvc := historyService.NewHistoryService(historyRepo, employeeRepo, departmentRepo, designationRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, employeeRepo)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	router := appHTTP.NewRouter(tokenAuth, cfg.App.Env, appHTTP.Handlers{
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Experience:   appHTTP.NewExperienceHandler(experienceSvc),
		Education:    appHTTP.NewEducationHandler(educationSvc),
		Dependent:    appHTTP.NewDependentHandler(dependentSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Note:         appHTTP.NewNoteHandler(noteSvc),
		Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
		History:      appHTTP.NewHistoryHandler(historySvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
