package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/kentzie123/LJA-System-Server/internal/handler/http/middleware"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/jwt"
)

func NewRouter(env string, jwtService jwt.Service, payrollHandler PayrollHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lja-system"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payruns", func(r chi.Router) {
				r.Post("/", payrollHandler.CreatePayRun)
				r.Get("/", payrollHandler.ListPayRuns)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayRunDetails)
					r.Delete("/", payrollHandler.DeletePayRun)
					r.Post("/finalize", payrollHandler.FinalizePayRun)
					r.Get("/export", payrollHandler.ExportPayRun)
				})
			})

			r.Get("/payslips/my", payrollHandler.GetMyPayslips)
			r.Get("/employees/{id}/payslips", payrollHandler.GetEmployeePayslips)
		})
	})
	return r
}
