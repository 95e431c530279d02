package middleware

import (
	"strconv"
	"time"

	"table-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute keeps 404 traffic from creating one series per path.
const unmatchedRoute = "unmatched"

func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, statusCode).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
