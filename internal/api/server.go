// Package api exposes the projection engine over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/scoreline/internal/config"
	"github.com/yourusername/scoreline/internal/engine"
	"github.com/yourusername/scoreline/internal/metrics"
)

// ProjectionsPath is the route that accepts market snapshots
const ProjectionsPath = "/v1/projections"

// Server is the projection HTTP API
type Server struct {
	router    *mux.Router
	server    *http.Server
	projector engine.Projector
	limiter   *rate.Limiter
	logger    *logrus.Entry
	apiCfg    config.APIConfig
	metricCfg config.MetricsConfig
}

// NewServer wires the routes and middleware around a projector
func NewServer(projector engine.Projector, apiCfg config.APIConfig, metricCfg config.MetricsConfig, logger *logrus.Logger) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		projector: projector,
		limiter:   rate.NewLimiter(rate.Limit(apiCfg.RateLimit), apiCfg.Burst),
		logger:    logger.WithField("component", "api"),
		apiCfg:    apiCfg,
		metricCfg: metricCfg,
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", apiCfg.Port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: apiCfg.RequestTimeout() + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)

	if s.metricCfg.Enabled {
		s.router.Handle(s.metricCfg.Path, metrics.Handler()).Methods(http.MethodGet)
	}

	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.Use(s.rateLimitMiddleware)
	v1.Use(s.timeoutMiddleware)
	v1.HandleFunc("/projections", s.handleProject).Methods(http.MethodPost)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.WithField("addr", s.server.Addr).Info("Projection API starting")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("projection API failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Projection API shutting down")
	return s.server.Shutdown(ctx)
}
