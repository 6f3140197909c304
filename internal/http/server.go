// Package http provides the API and metrics HTTP servers and their shared middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	calculatorHTTP "github.com/allisson/strcalc/internal/calculator/http"
	"github.com/allisson/strcalc/internal/config"
	apperrors "github.com/allisson/strcalc/internal/errors"
	"github.com/allisson/strcalc/internal/httputil"
	"github.com/allisson/strcalc/internal/metrics"
)

// Server is the calculator API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool
	cancel context.CancelFunc
}

// NewServer creates a server bound to host:port. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and every route.
//
// metricsProvider may be nil, in which case HTTP metrics are not collected.
func (s *Server) SetupRouter(
	cfg *config.Config,
	calculatorHandler *calculatorHTTP.CalculatorHandler,
	metricsProvider *metrics.Provider,
) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(newRequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	calculator := v1.Group("/calculator")
	{
		calculator.POST("/add", calculatorHandler.AddHandler)
		calculator.POST("/subtract", calculatorHandler.SubtractHandler)
		calculator.POST("/evaluate", calculatorHandler.EvaluateHandler)
	}

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, nil)
	})

	s.router = router
	s.server.Handler = router
	s.ready.Store(true)
}

// GetHandler returns the configured http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router
	s.ready.Store(true)

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	s.ready.Store(false)
	if s.cancel != nil {
		s.cancel()
	}

	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready between SetupRouter and Shutdown.
func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
