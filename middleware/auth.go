package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the privileged room-management routes with a
// static bearer token. Real credential issuance lives outside this
// service; an empty token disables the guard (single-operator setups
// behind their own proxy auth).
func RequireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		provided := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if provided != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "admin token required",
			})
			return
		}
		c.Next()
	}
}
