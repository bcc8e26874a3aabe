package middleware

import (
	"crypto/subtle"
	"net/http"

	"tombraider-hub/domain/apperror"
	"tombraider-hub/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminToken guards operator endpoints with a shared secret. An empty token
// disables the check.
func AdminToken(token string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token == "" {
			ctx.Next()
			return
		}
		got := ctx.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			logger.GetLogger().WithField("path", ctx.FullPath()).Warn("Rejected admin request")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   apperror.CodeUnauthorized,
				"message": "missing or invalid admin token",
			})
			return
		}
		ctx.Next()
	}
}
