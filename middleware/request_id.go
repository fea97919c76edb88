package middleware

import (
	"pharmabook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags each request with an ID and stashes a
// request-scoped logger in the context for the handlers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Set("logger", utils.GetLogger().With(zap.String("requestID", id)))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
