//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"table-booking/internal/handler/httperr"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/metrics"
	"table-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newEngine(mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mws...)
	return r
}

func TestCustomRecovery(t *testing.T) {
	r := newEngine(middleware.CustomRecovery())
	r.GET("/panic", func(_ *gin.Context) { panic("boom") })

	w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil)

	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	t.Run("public error is rendered when nothing was written", func(t *testing.T) {
		r := newEngine(middleware.ErrorHandler())
		r.GET("/public", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errors.New("bad"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusBadRequest, Error: "bad input"},
			})
		})

		w := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "bad input")
	})

	t.Run("private error becomes 500", func(t *testing.T) {
		r := newEngine(middleware.ErrorHandler())
		r.GET("/private", func(c *gin.Context) {
			_ = c.Error(errors.New("db exploded"))
		})

		w := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil)

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("written response is left alone", func(t *testing.T) {
		r := newEngine(middleware.ErrorHandler())
		r.GET("/written", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("x"), "already sent")
		})

		w := httptest.PerformRequest(t, r, http.MethodGet, "/written", nil)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already sent")
	})
}

func TestRateLimiter(t *testing.T) {
	m := metrics.New()
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2}, m, clock.NewRealClock())
	r := newEngine(rl.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 2 {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil)
	httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateLimited), 0)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local))
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1, IdleTTL: time.Minute}, metrics.New(), clk)
	r := newEngine(rl.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	fromIP := func(ip string) int {
		return httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil,
			map[string]string{"X-Forwarded-For": ip}).Code
	}

	assert.Equal(t, http.StatusOK, fromIP("10.0.0.1"))
	assert.Equal(t, http.StatusOK, fromIP("10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, fromIP("10.0.0.1"))
	assert.Equal(t, 2, rl.Tracked())

	clk.Add(30 * time.Second)
	assert.Equal(t, http.StatusOK, fromIP("10.0.0.3"))
	assert.Equal(t, 3, rl.Tracked(), "no sweep before the idle TTL")

	clk.Add(45 * time.Second)
	assert.Equal(t, http.StatusOK, fromIP("10.0.0.4"))
	assert.Equal(t, 2, rl.Tracked(), "10.0.0.1 and 10.0.0.2 were idle for over a minute")

	// An evicted client starts again with a full bucket.
	clk.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, fromIP("10.0.0.1"))
	assert.Equal(t, 1, rl.Tracked())
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	r := newEngine(middleware.MetricsMiddleware(m))
	r.GET("/tables", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, r, http.MethodGet, "/tables", nil)
	httptest.PerformRequest(t, r, http.MethodGet, "/missing", nil)

	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/tables", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")), 0)
}
