package middleware

import (
	"time"

	"tombraider-hub/infrastructure/logger"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request with its status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		entry := logger.GetLogger().WithFields(log.Fields{
			"method":   ctx.Request.Method,
			"path":     ctx.Request.URL.Path,
			"query":    ctx.Request.URL.RawQuery,
			"status":   ctx.Writer.Status(),
			"latency":  time.Since(start).String(),
			"clientIp": ctx.ClientIP(),
		})
		switch status := ctx.Writer.Status(); {
		case status >= 500:
			entry.Error("Request handled")
		case status >= 400:
			entry.Warn("Request handled")
		default:
			entry.Info("Request handled")
		}
	}
}
