package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// TraceIDKey is the gin context key the response envelope reads.
	TraceIDKey = "trace_id"

	traceIDHeader = "X-Trace-ID"
)

// TraceIDMiddleware tags every request with a trace id. An id sent by the
// caller is reused so the dashboard client can correlate its own logs;
// otherwise a fresh one is minted.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(TraceIDKey, traceID)
		c.Writer.Header().Set(traceIDHeader, traceID)
		c.Next()
	}
}
