package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(rid)
		assert.NoError(t, err)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	assert.Equal(t, "", GetRequestID(nil))
}

func TestLoggerLevels(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	router := gin.New()
	router.Use(RequestID(), Logger(log))
	router.GET("/status/:code", func(c *gin.Context) {
		switch c.Param("code") {
		case "500":
			c.Status(http.StatusInternalServerError)
		case "404":
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusOK)
		}
	})

	testCases := []struct {
		code  string
		level logrus.Level
	}{
		{"200", logrus.InfoLevel},
		{"404", logrus.WarnLevel},
		{"500", logrus.ErrorLevel},
	}
	for _, tt := range testCases {
		t.Run(tt.code, func(t *testing.T) {
			hook.Reset()
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status/"+tt.code, nil))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "/status/"+tt.code, entry.Data["path"])
			assert.NotEmpty(t, entry.Data["request_id"])
		})
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	registry := metrics.NewRegistry()
	router := gin.New()
	router.Use(Metrics(registry))
	router.GET("/api/v1/pizzas/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/v1/pizzas/1", "/api/v1/pizzas/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	registry.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/v1/pizzas/:id",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="unmatched",status="404"} 1`)

	count, err := testutil.GatherAndCount(registry.Gatherer(), "http_requests_in_flight")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCORS(t *testing.T) {
	preflight := func(router *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/pizzas", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS([]string{"http://localhost:3000"}))
		router.POST("/api/v1/pizzas", func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := preflight(router, "http://localhost:3000")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS([]string{"http://localhost:3000"}))
		router.POST("/api/v1/pizzas", func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := preflight(router, "http://evil.example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS([]string{"*"}))
		router.POST("/api/v1/pizzas", func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := preflight(router, "http://anywhere.example.com")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
