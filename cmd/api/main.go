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

	"github.com/hrms-vn/hrm-backend-go/internal/config"
	appHTTP "github.com/hrms-vn/hrm-backend-go/internal/handler/http"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/clock"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/jwt"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/logger"
	"github.com/hrms-vn/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-vn/hrm-backend-go/internal/service/attendance"
	bonusService "github.com/hrms-vn/hrm-backend-go/internal/service/bonus"
	leaveService "github.com/hrms-vn/hrm-backend-go/internal/service/leave"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     "hrm-backend",
		Version: version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			return err
		}
	}

	clk := clock.New(loc)
	tx := postgresql.NewTransactor(db)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	configRepo := postgresql.NewSystemConfigRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	policy := attendanceService.NewPolicyProvider(configRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, employeeRepo, policy, clk, log)
	leaveSvc := leaveService.NewLeaveService(tx, leaveRequestRepo, employeeRepo, clk, log)
	bonusSvc := bonusService.NewBonusService(bonusRepo, log)

	router := appHTTP.NewRouter(log, JWTService, cfg.CORS.AllowedOrigins, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc, clk),
		Bonus:      appHTTP.NewBonusHandler(bonusSvc),
		Amount:     appHTTP.NewAmountHandler(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", srv.Addr), slog.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
