package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/moneyflow/internal/adapter/http/handler"
	"github.com/iho/moneyflow/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler   *handler.CustomerHandler
	AccountHandler    *handler.AccountHandler
	TransferHandler   *handler.TransferHandler
	SettlementHandler *handler.SettlementHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
}

// NewRouter creates the HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logging := middleware.NewLoggingMiddleware(cfg.Logger)

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logging.Wrap)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Post("/{id}/block", cfg.CustomerHandler.Block)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Post("/find", cfg.AccountHandler.Find)
			r.Post("/delete", cfg.AccountHandler.Delete)
			r.Post("/deposit", cfg.AccountHandler.Deposit)
			r.Post("/withdraw", cfg.AccountHandler.Withdraw)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
			r.Get("/{id}", cfg.TransferHandler.Get)
		})

		r.Post("/settlement/run", cfg.SettlementHandler.Run)
	})

	return r
}
