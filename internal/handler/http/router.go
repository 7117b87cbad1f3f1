package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Auth     AuthHandler
	Punch    PunchHandler
	Vacation VacationHandler
	Stats    StatsHandler
	Health   HealthHandler
}

// NewLogger returns a JSON logger using the ECS field names.
func NewLogger(out io.Writer, level slog.Level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetracker"),
		slog.String("version", version),
		slog.String("env", env),
	)
}

func NewRouter(JWTService jwt.Service, logger *slog.Logger, corsOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.Method)
	})

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/readyz", h.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Post("/obtain-auth-token", h.Auth.ObtainToken)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Post("/check", h.Punch.Check)
			r.Post("/vacation", h.Vacation.Create)

			r.Route("/users/{user_id}", func(r chi.Router) {
				r.Get("/hours", h.Stats.Hours)
				r.Get("/average-times", h.Stats.AverageTimes)
			})

			r.Get("/team-stats/working-to-leaving", h.Stats.TeamRatio)
		})
	})
	return r
}
