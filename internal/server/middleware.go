package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cwbudde/algo-etc/internal/logging"
)

const headerRequestID = "X-Request-ID"

// requestID tags the request context with the caller's X-Request-ID or a
// fresh one. The id becomes the sweep's run id.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logging.ContextWithRunID(c.Request.Context(), id))
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// observe logs every request and records it in the metrics manager.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := c.Writer.Status()

		if s.metrics != nil {
			s.metrics.RecordHTTPRequest(endpoint, c.Request.Method, status, elapsed)
		}

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("request_id", logging.RunIDFromContext(c.Request.Context())),
		}
		if status >= 500 {
			s.log.Error(c.Request.Context(), "request failed", fields...)
			return
		}
		s.log.Info(c.Request.Context(), "request served", fields...)
	}
}
