package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/auth"
	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/middleware"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Bonus      BonusHandler
	Amount     AmountHandler
}

func NewRouter(logger *slog.Logger, JWTService jwt.Service, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Link", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.RequestID)

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/", h.Attendance.List)

				r.With(middleware.RequireManager).Get("/export", h.Attendance.Export)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", h.Leave.GetBalance)
				r.Post("/requests", h.Leave.SubmitRequest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/requests/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/requests/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleHR))
				r.Post("/", h.Bonus.Create)
				r.Get("/", h.Bonus.List)
			})

			r.Post("/amounts/normalize", h.Amount.Normalize)
		})
	})
	return r
}
