package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	promcollector "github.com/aescanero/greetd/pkg/adapters/metrics/prometheus"
)

const requestIDHeader = "X-Request-ID"

// requestID assigns each request an identifier, preserving one supplied
// by the client
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// requestMetrics records request counts and latency. A nil collector
// disables recording.
func requestMetrics(metrics *promcollector.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path

		metrics.IncRequestsInFlight()
		c.Next()
		metrics.DecRequestsInFlight()

		metrics.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
