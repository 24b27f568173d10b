package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware records request counts and latencies. The matched
// route template is used as the path label to keep cardinality bounded.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		HttpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status()), ServiceName).Inc()
		HttpRequestDuration.WithLabelValues(method, path, ServiceName).Observe(time.Since(start).Seconds())
	}
}
