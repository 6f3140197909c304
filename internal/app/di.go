// Package app provides the dependency injection container that assembles the calculator
// components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	calculatorHTTP "github.com/allisson/strcalc/internal/calculator/http"
	calculatorService "github.com/allisson/strcalc/internal/calculator/service"
	calculatorUseCase "github.com/allisson/strcalc/internal/calculator/usecase"
	"github.com/allisson/strcalc/internal/config"
	"github.com/allisson/strcalc/internal/http"
	"github.com/allisson/strcalc/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Calculator
	evaluator         calculatorService.Evaluator
	calculatorUseCase calculatorUseCase.CalculatorUseCase
	calculatorHandler *calculatorHTTP.CalculatorHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                    sync.Mutex
	loggerInit            sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	evaluatorInit         sync.Once
	calculatorUseCaseInit sync.Once
	calculatorHandlerInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
			return
		}
		c.metricsProvider = provider
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics are
// disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		businessMetrics, err := c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
			return
		}
		c.businessMetrics = businessMetrics
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// Evaluator returns the calculator pipeline.
func (c *Container) Evaluator() calculatorService.Evaluator {
	c.evaluatorInit.Do(func() {
		c.evaluator = calculatorService.NewEvaluator()
	})
	return c.evaluator
}

// CalculatorUseCase returns the calculator use case, wrapped with metrics when enabled.
func (c *Container) CalculatorUseCase() (calculatorUseCase.CalculatorUseCase, error) {
	c.calculatorUseCaseInit.Do(func() {
		useCase, err := c.initCalculatorUseCase()
		if err != nil {
			c.setInitError("calculatorUseCase", err)
			return
		}
		c.calculatorUseCase = useCase
	})
	if err := c.initError("calculatorUseCase"); err != nil {
		return nil, err
	}
	return c.calculatorUseCase, nil
}

// CalculatorHandler returns the calculator HTTP handler.
func (c *Container) CalculatorHandler() (*calculatorHTTP.CalculatorHandler, error) {
	c.calculatorHandlerInit.Do(func() {
		useCase, err := c.CalculatorUseCase()
		if err != nil {
			c.setInitError(
				"calculatorHandler",
				fmt.Errorf("failed to get calculator use case for calculator handler: %w", err),
			)
			return
		}
		c.calculatorHandler = calculatorHTTP.NewCalculatorHandler(
			useCase,
			c.config.CalculatorMaxInputLength,
			c.Logger(),
		)
	})
	if err := c.initError("calculatorHandler"); err != nil {
		return nil, err
	}
	return c.calculatorHandler, nil
}

// HTTPServer returns the API server with its router already configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
			return
		}
		c.httpServer = server
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		server, err := c.initMetricsServer()
		if err != nil {
			c.setInitError("metricsServer", err)
			return
		}
		c.metricsServer = server
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized component. Servers are stopped before the metrics
// provider so their last requests are still recorded.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates a JSON logger writing to stdout at the configured level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level

	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}

	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return businessMetrics, nil
}

func (c *Container) initCalculatorUseCase() (calculatorUseCase.CalculatorUseCase, error) {
	baseUseCase := calculatorUseCase.NewCalculatorUseCase(c.Evaluator(), c.Logger())

	if !c.config.MetricsEnabled {
		return baseUseCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for calculator use case: %w", err)
	}

	return calculatorUseCase.NewCalculatorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	handler, err := c.CalculatorHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get calculator handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, handler, provider)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
