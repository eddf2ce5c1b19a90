package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tablebook/internal/pkg/logger"
)

// RequestID tags every request with a unique id, reusing an inbound
// X-Request-ID when a gateway already assigned one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Set("logger", logger.Get().With(zap.String("request_id", requestID)))

		c.Next()
	}
}
