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

	"github.com/dayflow-hris/dayflow-backend-go/internal/config"
	appHTTP "github.com/dayflow-hris/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/logger"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/metrics"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/storage"
	"github.com/dayflow-hris/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hris/dayflow-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hris/dayflow-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hris/dayflow-backend-go/internal/service/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/service/file"
	leaveService "github.com/dayflow-hris/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hris/dayflow-backend-go/internal/service/payroll"
	reportService "github.com/dayflow-hris/dayflow-backend-go/internal/service/report"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:   logger.ParseLevel(cfg.App.LogLevel),
		File:    cfg.App.LogFile,
		Console: !cfg.IsProduction(),
		Stdout:  os.Stdout,
	})
	slog.SetDefault(log)

	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var revocations jwt.RevocationStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		revocations = jwt.NewRedisRevocationStore(client)
		slog.Info("token revocations stored in redis", "addr", cfg.Redis.Addr)
	} else {
		revocations = jwt.NewMemoryRevocationStore()
		slog.Warn("REDIS_ADDR not set, token revocations kept in memory")
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	loc := cfg.Location()
	transactor := postgresql.NewTransactor(db)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.TokenTTL(), revocations)
	fileService := file.NewFileService(fileStorage)

	authSvc := serviceAuth.NewAuthService(transactor, userRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo, fileService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, loc)
	leaveSvc := leaveService.NewLeaveService(transactor, leaveRequestRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(transactor, payrollRepo, employeeRepo)
	reportSvc := reportService.NewReportService(reportRepo, payrollRepo, loc)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		JWTService:     JWTService,
		Metrics:        metrics.New(),
		Logger:         log,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		UploadsDir:     fileStorage.BasePath(),
		UploadsURL:     cfg.Storage.BaseURL,
	}, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
