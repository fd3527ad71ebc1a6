package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
)

// Context keys set by the middlewares in this package
const (
	RequestIDKey = "requestID"
	UserIDKey    = "userID"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// HeartbeatPath is probed often enough to be kept out of the access log
const HeartbeatPath = "/api/heartbeat"

// RequestID tags every request with an id. A well-formed incoming
// X-Request-ID is kept, anything else is replaced by a fresh UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
