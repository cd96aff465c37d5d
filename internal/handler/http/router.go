package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/strivehr/perform-backend-go/internal/config"
	"github.com/strivehr/perform-backend-go/internal/handler/http/middleware"
	"github.com/strivehr/perform-backend-go/internal/pkg/jwt"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Employee     *EmployeeHandler
	Evaluation   *EvaluationHandler
	Goal         *GoalHandler
	Training     *TrainingHandler
	Leave        *LeaveHandler
	Report       *ReportHandler
	Dashboard    *DashboardHandler
	Notification *NotificationHandler
	Account      *AccountHandler
	Portal       *PortalHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "perform-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/login/employee-code", h.Auth.PortalLogin)
			r.Get("/login/oauth/google", h.Auth.GoogleSignIn)
			r.Get("/oauth/callback/google", h.Auth.GoogleCallback)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Get("/{employeeID}/leave-balances", h.Leave.Balances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{employeeID}/account", h.Account.Provision)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Employee.ListDepartments)
				r.Get("/{departmentID}/approval-levels", h.Leave.ListApprovalLevels)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.CreateDepartment)
					r.Put("/{id}", h.Employee.UpdateDepartment)
					r.Delete("/{id}", h.Employee.DeleteDepartment)
				})
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/provision", h.Account.ProvisionAll)
			})

			r.Route("/evaluations", func(r chi.Router) {
				r.Get("/", h.Evaluation.List)
				r.Get("/{id}", h.Evaluation.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", h.Evaluation.Create)
					r.Put("/{id}", h.Evaluation.Update)
					r.Post("/{id}/submit", h.Evaluation.Submit)
					r.Post("/{id}/review", h.Evaluation.Review)
				})
			})

			r.Route("/improvement-plans", func(r chi.Router) {
				r.Get("/", h.Evaluation.ListPlans)
				r.Get("/{id}", h.Evaluation.GetPlan)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", h.Evaluation.CreatePlan)
					r.Put("/{id}", h.Evaluation.UpdatePlan)
				})
			})

			r.Route("/evaluation-periods", func(r chi.Router) {
				r.Get("/", h.Evaluation.ListPeriods)
				r.With(middleware.RequireAdmin).Post("/", h.Evaluation.CreatePeriod)
			})

			r.Route("/kpis", func(r chi.Router) {
				r.Get("/", h.Evaluation.ListKPIs)
				r.With(middleware.RequireAdmin).Post("/", h.Evaluation.CreateKPI)

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", h.Evaluation.ListKPICategories)
					r.With(middleware.RequireAdmin).Post("/", h.Evaluation.CreateKPICategory)
				})
			})

			r.Route("/competencies", func(r chi.Router) {
				r.Get("/", h.Evaluation.ListCompetencies)
				r.With(middleware.RequireAdmin).Post("/", h.Evaluation.CreateCompetency)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.Goal.List)
				r.Get("/{id}", h.Goal.Get)
				r.Get("/{id}/progress", h.Goal.ListProgress)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", h.Goal.Create)
					r.Post("/{id}/progress", h.Goal.UpdateProgress)
					r.Post("/{id}/cancel", h.Goal.Cancel)
				})

				r.With(middleware.RequireAdmin).Post("/sweep-overdue", h.Goal.MarkOverdue)
			})

			r.Route("/trainings", func(r chi.Router) {
				r.Get("/", h.Training.List)
				r.Get("/{id}", h.Training.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", h.Training.Create)
					r.Put("/{id}/status", h.Training.UpdateStatus)
				})
			})

			r.Route("/training-requests", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/", h.Training.ListRequests)
				r.Post("/{id}/review", h.Training.ReviewRequest)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/{id}/submit", h.Leave.Submit)
				r.Get("/{id}/memo", h.Leave.DownloadMemo)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
					r.Post("/{id}/reset", h.Leave.ResetToDraft)
					r.Post("/bulk-approve", h.Leave.BulkApprove)
					r.Post("/bulk-reject", h.Leave.BulkReject)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Leave.ListTypes)
				r.With(middleware.RequireAdmin).Post("/", h.Leave.CreateType)
			})

			r.Route("/approval-levels", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", h.Leave.CreateApprovalLevel)
			})

			r.Route("/leave-balances", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/carry-over", h.Leave.CarryOver)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Post("/generate", h.Report.Generate)
				r.Get("/", h.Report.ListRecords)
			})

			r.With(middleware.RequireApprover).Get("/dashboard", h.Dashboard.Stats)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/stream", h.Notification.Stream)
				r.Post("/{id}/read", h.Notification.MarkRead)
				r.Post("/read-all", h.Notification.MarkAllRead)
			})

			// Employee self-service portal
			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequireEmployeeLink)
				r.Get("/", h.Portal.Me)
				r.Get("/evaluations", h.Portal.MyEvaluations)
				r.Get("/goals", h.Portal.MyGoals)
				r.Post("/goals/{id}/progress", h.Portal.UpdateMyGoalProgress)
				r.Get("/trainings", h.Portal.MyTrainings)
				r.Get("/training-requests", h.Portal.MyTrainingRequests)
				r.Post("/training-requests", h.Portal.SubmitTrainingRequest)
				r.Get("/leave-requests", h.Portal.MyLeaveRequests)
				r.Post("/leave-requests", h.Portal.CreateLeaveRequest)
				r.Post("/leave-requests/{id}/submit", h.Portal.SubmitLeaveDraft)
				r.Get("/leave-balances", h.Portal.MyLeaveBalances)
			})
		})
	})

	return r
}
