package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/strivehr/perform-backend-go/internal/config"
	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	appHTTP "github.com/strivehr/perform-backend-go/internal/handler/http"
	"github.com/strivehr/perform-backend-go/internal/pkg/cron"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
	"github.com/strivehr/perform-backend-go/internal/pkg/jwt"
	"github.com/strivehr/perform-backend-go/internal/pkg/oauth"
	"github.com/strivehr/perform-backend-go/internal/pkg/password"
	"github.com/strivehr/perform-backend-go/internal/pkg/sse"
	"github.com/strivehr/perform-backend-go/internal/pkg/storage"
	"github.com/strivehr/perform-backend-go/internal/repository/postgresql"
	accountService "github.com/strivehr/perform-backend-go/internal/service/account"
	authService "github.com/strivehr/perform-backend-go/internal/service/auth"
	dashboardService "github.com/strivehr/perform-backend-go/internal/service/dashboard"
	employeeService "github.com/strivehr/perform-backend-go/internal/service/employee"
	evaluationService "github.com/strivehr/perform-backend-go/internal/service/evaluation"
	goalService "github.com/strivehr/perform-backend-go/internal/service/goal"
	leaveService "github.com/strivehr/perform-backend-go/internal/service/leave"
	notificationService "github.com/strivehr/perform-backend-go/internal/service/notification"
	reportService "github.com/strivehr/perform-backend-go/internal/service/report"
	trainingService "github.com/strivehr/perform-backend-go/internal/service/training"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	kpiRepo := postgresql.NewKPIRepository(db)
	evaluationRepo := postgresql.NewEvaluationRepository(db)
	improvementPlanRepo := postgresql.NewImprovementPlanRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	trainingRepo := postgresql.NewTrainingRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	approvalLevelRepo := postgresql.NewApprovalLevelRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveDocumentRepo := postgresql.NewLeaveDocumentRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		fmt.Println("Error initializing storage:", err)
		os.Exit(1)
	}

	hub := sse.NewHub()

	ledger := leaveService.NewLedger(leaveBalanceRepo, leaveTypeRepo, cfg.Leave.EnforceBalance)

	notificationSvc := notificationService.NewService(notificationRepo, hub)
	authSvc := authService.NewService(userRepo, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewService(employeeRepo, departmentRepo, evaluationRepo, goalRepo, trainingRepo, leaveBalanceRepo)
	evaluationSvc := evaluationService.NewService(evaluationRepo, employeeRepo, kpiRepo, improvementPlanRepo)
	goalSvc := goalService.NewService(goalRepo, employeeRepo)
	trainingSvc := trainingService.NewService(trainingRepo, employeeRepo)
	leaveSvc := leaveService.NewService(
		db,
		leaveRequestRepo,
		leaveTypeRepo,
		approvalLevelRepo,
		leaveDocumentRepo,
		employeeRepo,
		&employeeUserResolver{employees: employeeRepo},
		notificationSvc,
		ledger,
		fileStorage,
	)
	reportSvc := reportService.NewService(reportRepo, notificationSvc)
	dashboardSvc := dashboardService.NewService(dashboardRepo)
	accountSvc := accountService.NewService(employeeRepo, profileRepo, userRepo, password.DefaultLength)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc, departmentRepo),
		Evaluation:   appHTTP.NewEvaluationHandler(evaluationSvc, kpiRepo),
		Goal:         appHTTP.NewGoalHandler(goalSvc),
		Training:     appHTTP.NewTrainingHandler(trainingSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc, fileStorage),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Account:      appHTTP.NewAccountHandler(accountSvc),
		Portal:       appHTTP.NewPortalHandler(employeeSvc, evaluationSvc, goalSvc, trainingSvc, leaveSvc),
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob("goal-overdue-sweep", 24*time.Hour, func(ctx context.Context) error {
		marked, err := goalSvc.MarkOverdue(ctx, time.Now())
		if err != nil {
			return err
		}
		if marked > 0 {
			slog.Info("marked goals overdue", "count", marked)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

// employeeUserResolver maps an employee to the user account that should
// receive their notifications.
type employeeUserResolver struct {
	employees employee.Repository
}

func (r *employeeUserResolver) NotifyUserID(ctx context.Context, employeeID string) (string, bool) {
	emp, err := r.employees.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return "", false
	}
	return *emp.UserID, true
}
