package middleware

import (
	"time"

	"fleet-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency labelled by the matched route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
