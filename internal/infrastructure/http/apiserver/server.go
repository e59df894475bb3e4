// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/healthcheck"
)

// APIServer serves the JSON API (no templates, no frontend)
type APIServer struct {
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
	router  *chi.Mux
	planner inbound.PlannerService
	grocery inbound.GroceryService
	health  *healthcheck.HealthCheck
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	planner inbound.PlannerService,
	grocery inbound.GroceryService,
	health *healthcheck.HealthCheck,
) *APIServer {
	server := &APIServer{
		config:  cfg,
		logger:  log,
		planner: planner,
		grocery: grocery,
		health:  health,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())

	r.Route("/api/v1", func(r chi.Router) {
		plannerH := handlers.NewPlannerAPIHandlers(s.planner, s.logger)
		groceryH := handlers.NewGroceryAPIHandlers(s.grocery, s.logger)

		openapi := NewOpenAPIHandler(s.logger)
		r.Get("/openapi.yaml", openapi.ServeSpec)
		r.Get("/docs", openapi.ServeDocs)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.config.Auth.JWTSecret))

			r.Route("/ai", func(r chi.Router) {
				r.Post("/generate-ingredients", plannerH.GenerateIngredients)
				r.Post("/generate-recipe", plannerH.GenerateRecipe)
				r.Post("/generate-meal-plan", plannerH.GenerateMealPlan)
			})

			r.Route("/grocery-lists", func(r chi.Router) {
				r.Post("/generate", groceryH.Generate)
			})
		})
	})

	return r
}

// Start starts the HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
