package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hr-hierarchy/internal/pkg/metrics"
)

// MetricsMiddleware 记录请求耗时
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
