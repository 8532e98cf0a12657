package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/learnhub-api/internal/auth"
	"github.com/redmonkez12/learnhub-api/internal/config"
	"github.com/redmonkez12/learnhub-api/internal/course"
	"github.com/redmonkez12/learnhub-api/internal/httputil"
	"github.com/redmonkez12/learnhub-api/internal/logging"
	"github.com/redmonkez12/learnhub-api/internal/metrics"
)

const healthMessage = "LearnHub server is running"

// Handlers groups everything the router mounts
type Handlers struct {
	Auth    *auth.Handler
	Courses *course.Handler
	// Resolves bearer tokens for logging when set
	Identity *auth.Middleware
	Metrics  *metrics.Collector
	// Exposes /metrics when set
	MetricsHandler http.Handler
}

// NewRouter creates and configures the HTTP router.
// Tokens are issued but no route requires one.
func NewRouter(cfg *config.Config, h Handlers, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer) // After the logger so panics are logged as 500s
	if h.Identity != nil {
		r.Use(h.Identity.Identify)
	}
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}
	r.Use(middleware.Compress(5))

	r.Get("/", handleHealth)

	if h.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.MetricsHandler)
	}

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		logger.Info("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Post("/google-login", h.Auth.GoogleLogin)

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.Courses.List)
		r.Post("/", h.Courses.Create)
		r.Put("/{id}", h.Courses.Update)
		r.Delete("/{id}", h.Courses.Delete)
	})

	return r
}

// handleHealth is the liveness endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      plain
// @Success      200 {string} string
// @Router       / [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondText(w, healthMessage, http.StatusOK)
}
