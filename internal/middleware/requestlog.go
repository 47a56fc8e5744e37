package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
)

type RequestLogMiddleware struct {
	log *logger.Logger
}

func NewRequestLogMiddleware(log *logger.Logger) *RequestLogMiddleware {
	middlewareLogger := log.With("middleware", "RequestLogMiddleware")
	return &RequestLogMiddleware{log: middlewareLogger}
}

func (rm *RequestLogMiddleware) Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rm.log.Info("Request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
