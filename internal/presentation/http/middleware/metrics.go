package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/milldesk/milldesk-api/pkg/metrics"
)

// MetricsMiddleware records request counts and latencies per route. The
// route template (not the raw path) is used as the label, so IDs don't blow
// up cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
