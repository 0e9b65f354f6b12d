package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/emberhq/ember-api/internal/account"
	"github.com/emberhq/ember-api/internal/auth"
	"github.com/emberhq/ember-api/internal/config"
	"github.com/emberhq/ember-api/internal/httputil"
	"github.com/emberhq/ember-api/internal/logging"
	"github.com/emberhq/ember-api/internal/match"
	"github.com/emberhq/ember-api/internal/message"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	cfg *config.Config,
	accountHandler *account.Handler,
	matchHandler *match.Handler,
	messageHandler *message.Handler,
	authMiddleware *auth.Middleware,
	logger *logging.Logger,
) *chi.Mux {
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
	r.Use(SecurityHeaders)      // Security headers on all responses
	r.Use(middleware.Recoverer) // Recover from panics
	r.Use(middleware.RequestID) // Add request ID
	r.Use(middleware.RealIP)    // Set RemoteAddr to real IP
	// Annotate must run before the request logger so the bearer identity is
	// on the context when the request-scoped logger is built
	r.Use(authMiddleware.Annotate)       // Attach bearer identity when present; never rejects
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))        // Compress responses

	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Account routes
	r.Post("/signup", accountHandler.SignUp)
	r.Post("/login", accountHandler.LogIn)
	r.Get("/user", accountHandler.GetUser)
	r.Get("/users", accountHandler.GetUsers)
	r.Get("/gendered-users", accountHandler.GetGenderedUsers)
	r.Put("/user", accountHandler.UpdateUser)

	// Match routes
	r.Put("/addmatch", matchHandler.AddMatch)

	// Message routes
	r.Get("/messages", messageHandler.GetMessages)
	r.Post("/message", messageHandler.SendMessage)

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
