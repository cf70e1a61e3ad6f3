package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shiftline-hq/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, timesheetHandler TimesheetHandler, exportHandler ExportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetrack-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.List)

				// Bulk review is a privileged surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePrivileged)
					r.Post("/status", timesheetHandler.BulkChangeStatus)
				})

				r.Route("/entries/{entryKey}", func(r chi.Router) {
					r.Get("/", timesheetHandler.GetDayEntry)
					r.Put("/", timesheetHandler.EditPunchEntry)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", timesheetHandler.Get)
					r.Put("/", timesheetHandler.Update)
					r.Delete("/", timesheetHandler.Delete)
					r.Post("/status", timesheetHandler.ChangeStatus)
				})
			})

			r.Route("/exports", func(r chi.Router) {
				r.Route("/timesheets", func(r chi.Router) {
					r.Get("/csv", exportHandler.ExportCSV)
					r.Get("/document", exportHandler.ExportDocument)
				})
			})
		})
	})
	return r
}
