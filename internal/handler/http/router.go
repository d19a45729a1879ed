package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/attendance-insights/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// JWTService enables bearer auth on /api/v1 when set.
	JWTService jwt.Service
}

func NewRouter(opts RouterOptions, reportHandler ReportHandler, scheduleHandler ScheduleHandler) *chi.Mux {
	r := chi.NewRouter()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
		if opts.JWTService != nil {
			r.Use(jwtauth.Verifier(opts.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
		}

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", reportHandler.Generate)
			r.Post("/export", reportHandler.Export)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Get("/schedule", scheduleHandler.Resolve)
		})
	})

	return r
}

// NewLogger builds the JSON process logger with ECS attribute names.
func NewLogger(w io.Writer, level slog.Level, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-insights"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)
}
