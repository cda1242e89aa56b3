// Package middleware provides HTTP middleware for the ZoneKeeper REST API:
// API key authentication and request logging.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zonekit/zonekeeper/internal/api/models"
)

// RequireAPIKey enforces a shared-secret API key. Clients must send
// `X-API-Key: <key>`; an empty expected key disables the check.
func RequireAPIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" || c.GetHeader("X-API-Key") == expected {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
