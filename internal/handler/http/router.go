package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	JWTService     jwt.Service
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	UploadsDir     string // served read-only at UploadsURL when set
	UploadsURL     string
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Report     ReportHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	if opts.UploadsDir != "" && opts.UploadsURL != "" {
		prefix := "/" + strings.Trim(opts.UploadsURL, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(opts.UploadsDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/signin", h.Auth.Signin)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(opts.JWTService.JWTAuth(), jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(opts.JWTService))

			r.Get("/auth/me", h.Auth.Me)
			r.Post("/auth/signout", h.Auth.Signout)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Post("/avatar", h.Employee.UploadAvatar)
					r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Delete("/", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", h.Attendance.CheckIn)
				r.Post("/checkout", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/weekly", h.Attendance.Weekly)

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/all", h.Attendance.All)
				r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).Put("/{id}", h.Attendance.Update)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my-leaves", h.Leave.MyLeaves)

				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/all", h.Leave.All)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/{id}/approve", h.Leave.Decide)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my-payroll", h.Payroll.Mine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", h.Payroll.All)
					r.Post("/", h.Payroll.Upsert)
					r.Put("/{id}", h.Payroll.Update)
					r.Patch("/{id}/status", h.Payroll.SetStatus)
					r.Put("/salary/{userId}", h.Payroll.SetBaseSalary)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/salary-slip/{userId}", h.Report.SalarySlip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsView))
					r.Get("/analytics", h.Report.Analytics)
					r.Get("/attendance", h.Report.Attendance)
				})
			})
		})
	})
	return r
}
