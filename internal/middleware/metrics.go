package middleware

import (
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request duration, count and in-flight requests. The route
// template is used as path label to keep cardinality bounded.
func Metrics(registry *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		registry.IncrementInFlight()
		start := time.Now()
		defer registry.DecrementInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		registry.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
