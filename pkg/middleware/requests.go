package middleware

import (
	"strconv"

	"github.com/boutique-jeux/boutique-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RequestCounter increments the per-route request counter once the handler
// chain has completed.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
