package http

import (
	"log/slog"
	"net/http"

	_ "eventmanagement/docs"
	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Account    *controllers.AccountController
	Contact    *controllers.ContactController
	Invitation *controllers.InvitationController
	Health     *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Static assets are served from staticDir at "/".
func NewRouter(staticDir string, c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Forms
	mux.HandleFunc("POST /submitContactForm", c.Contact.Submit)
	mux.HandleFunc("POST /register", c.Account.Register)
	mux.HandleFunc("POST /login", c.Account.Login)
	mux.HandleFunc("POST /invi", c.Invitation.Submit)

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("GET /", http.FileServer(http.Dir(staticDir)))

	return mux
}

// NewHandler wraps the router with request logging, metrics, and CORS.
func NewHandler(logger *slog.Logger, allowedOrigins []string, mux *http.ServeMux) http.Handler {
	return middleware.LoggingMiddleware(logger, middleware.Metrics(middleware.CORS(allowedOrigins, mux)))
}
