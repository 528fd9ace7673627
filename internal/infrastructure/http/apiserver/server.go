// Package apiserver wires the chi router, middleware stack, and handlers
// into an HTTP server with graceful shutdown.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/infrastructure/config"
	"github.com/platefull/mealplanner/internal/infrastructure/http/handlers"
	"github.com/platefull/mealplanner/internal/infrastructure/http/middleware"
	"github.com/platefull/mealplanner/internal/ports/inbound"
	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// Server is the HTTP API server
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// New builds the server with all routes mounted
func New(
	cfg *config.Config,
	logger *zap.Logger,
	repos outbound.Repositories,
	planner inbound.PlannerService,
) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	userHandlers := handlers.NewUserHandlers(repos.Users, logger)
	mealHandlers := handlers.NewMealHandlers(repos.Meals, logger)
	inventoryHandlers := handlers.NewInventoryHandlers(repos.Inventory, logger)
	mealPlanHandlers := handlers.NewMealPlanHandlers(planner, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))
	if cfg.Server.EnableCORS {
		r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}
	r.Use(metrics.Handler())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":%q,"version":%q}`, cfg.App.Name, cfg.App.Version)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandlers.CreateUser)
			r.Get("/", userHandlers.ListUsers)
			r.Get("/{id}", userHandlers.GetUser)
		})

		r.Route("/meals", func(r chi.Router) {
			r.Post("/", mealHandlers.CreateMeal)
			r.Get("/", mealHandlers.ListMeals)
			r.Get("/{id}", mealHandlers.GetMeal)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", inventoryHandlers.CreateItem)
			r.Get("/", inventoryHandlers.ListItems)
			r.Get("/{id}", inventoryHandlers.GetItem)
			r.Delete("/{id}", inventoryHandlers.DeleteItem)
		})

		r.Route("/meal-plans", func(r chi.Router) {
			r.Post("/generate/{userID}", mealPlanHandlers.GenerateDailyMeals)
			r.Get("/user/{userID}", mealPlanHandlers.ListUserPlans)
			r.Patch("/{id}/eaten-outside", mealPlanHandlers.SetEatenOutside)
		})
	})

	return &Server{
		config: cfg,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Start begins serving requests and blocks until the listener closes
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
