package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculatorHTTP "github.com/allisson/strcalc/internal/calculator/http"
	calculatorService "github.com/allisson/strcalc/internal/calculator/service"
	calculatorUseCase "github.com/allisson/strcalc/internal/calculator/usecase"
	"github.com/allisson/strcalc/internal/config"
	"github.com/allisson/strcalc/internal/metrics"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		CalculatorMaxInputLength: 128,
		RateLimitEnabled:         true,
		RateLimitRequestsPerSec:  100,
		RateLimitBurst:           100,
		MetricsNamespace:         "strcalc_test",
	}
}

// setupTestServer builds a fully routed server backed by the real calculator.
func setupTestServer(t *testing.T, cfg *config.Config, provider *metrics.Provider) *Server {
	t.Helper()

	logger := discardLogger()
	useCase := calculatorUseCase.NewCalculatorUseCase(calculatorService.NewEvaluator(), logger)
	handler := calculatorHTTP.NewCalculatorHandler(useCase, cfg.CalculatorMaxInputLength, logger)

	server := NewServer("127.0.0.1", 0, logger)
	server.SetupRouter(cfg, handler, provider)
	t.Cleanup(func() {
		if server.cancel != nil {
			server.cancel()
		}
	})

	return server
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := NewServer("localhost", 8080, discardLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Run("NotReadyBeforeSetup", func(t *testing.T) {
		server := NewServer("localhost", 8080, discardLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not_ready"}`, w.Body.String())
	})

	t.Run("ReadyAfterSetup", func(t *testing.T) {
		server := setupTestServer(t, testConfig(), nil)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(newRequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?verbose=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"test"}`, w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestIDMiddleware_HeaderPresent(t *testing.T) {
	server := setupTestServer(t, testConfig(), nil)

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	requestID := w.Header().Get("X-Request-Id")
	require.NotEmpty(t, requestID)

	parsed, err := uuid.Parse(requestID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestRouter_CalculatorEndpoints(t *testing.T) {
	server := setupTestServer(t, testConfig(), nil)
	handler := server.GetHandler()

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedResult int
		expectedError  string
		expectedValues []string
	}{
		{
			name:           "Add_Empty",
			path:           "/v1/calculator/add",
			body:           `{"input":""}`,
			expectedStatus: http.StatusOK,
			expectedResult: 0,
		},
		{
			name:           "Add_MultipleDelimiters",
			path:           "/v1/calculator/add",
			body:           `{"input":"//[*][%]\n1*2%3"}`,
			expectedStatus: http.StatusOK,
			expectedResult: 6,
		},
		{
			name:           "Add_IgnoresLargeOperands",
			path:           "/v1/calculator/add",
			body:           `{"input":"2,1001"}`,
			expectedStatus: http.StatusOK,
			expectedResult: 2,
		},
		{
			name:           "Subtract_FirstOperandKept",
			path:           "/v1/calculator/subtract",
			body:           `{"input":"1001,1"}`,
			expectedStatus: http.StatusOK,
			expectedResult: 1000,
		},
		{
			name:           "Evaluate_Subtract",
			path:           "/v1/calculator/evaluate",
			body:           `{"operation":"subtract","input":"10\n3,2"}`,
			expectedStatus: http.StatusOK,
			expectedResult: 5,
		},
		{
			name:           "Add_Negative",
			path:           "/v1/calculator/add",
			body:           `{"input":"1,-2,3,-4"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "negative_operand",
			expectedValues: []string{"-2", "-4"},
		},
		{
			name:           "Add_NonNumericBeforeNegative",
			path:           "/v1/calculator/add",
			body:           `{"input":"1,a,-2"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "non_numeric_operand",
			expectedValues: []string{"a"},
		},
		{
			name:           "Add_MalformedDeclaration",
			path:           "/v1/calculator/add",
			body:           `{"input":"//;1;2"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "malformed_declaration",
		},
		{
			name:           "Evaluate_UnknownOperation",
			path:           "/v1/calculator/evaluate",
			body:           `{"operation":"divide","input":"1"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler, tt.path, tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var response map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedError == "" {
				assert.EqualValues(t, tt.expectedResult, response["result"])
				return
			}

			assert.Equal(t, tt.expectedError, response["error"])
			if tt.expectedValues != nil {
				values := make([]string, 0)
				for _, v := range response["values"].([]any) {
					values = append(values, v.(string))
				}
				assert.Equal(t, tt.expectedValues, values)
			}
		})
	}
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequestsPerSec = 1
	cfg.RateLimitBurst = 1
	server := setupTestServer(t, cfg, nil)

	assert.Equal(t, http.StatusOK, postJSON(t, server.GetHandler(), "/v1/calculator/add", `{"input":"1"}`).Code)

	w := postJSON(t, server.GetHandler(), "/v1/calculator/add", `{"input":"1"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Health checks are never rate limited.
	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_NotFound(t *testing.T) {
	server := setupTestServer(t, testConfig(), nil)

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := NewServer("127.0.0.1", 0, discardLogger())
	assert.Error(t, server.Start(context.Background()))
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server := setupTestServer(t, testConfig(), nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
	assert.False(t, server.ready.Load())
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("strcalc_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	// Traffic on the API server shows up on the metrics server.
	server := setupTestServer(t, testConfig(), provider)
	postJSON(t, server.GetHandler(), "/v1/calculator/add", `{"input":"1,2"}`)

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "strcalc_test_http_requests_total")
}

func TestServer_NoMetricsEndpoint(t *testing.T) {
	provider, err := metrics.NewProvider("strcalc_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	server := setupTestServer(t, testConfig(), provider)

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
